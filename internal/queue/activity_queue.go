package queue

import (
	"context"
	"event-ticketing/internal/model"
)

type Delivery struct {
	Data *model.ActivityLog
	Ack  func()
	Nack func(requeue bool)
}

type ActivityQueue interface {
	// 發送稽核紀錄到隊列
	PublishActivity(ctx context.Context, entry *model.ActivityLog) error
	// 訂閱稽核紀錄隊列
	SubscribeActivities(ctx context.Context) (<-chan Delivery, error)
}

type ActivityQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.ActivityLog
}

func NewActivityQueue(bufferSize int) ActivityQueue {
	return &ActivityQueueImpl{
		ch: make(chan *model.ActivityLog, bufferSize),
	}
}

// PublishActivity 隊列滿了或 ctx 結束時直接回傳錯誤，不阻塞結帳流程
func (q *ActivityQueueImpl) PublishActivity(ctx context.Context, entry *model.ActivityLog) error {
	select {
	case q.ch <- entry:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *ActivityQueueImpl) SubscribeActivities(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: entry,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// 簡單模擬重回隊列；滿了就丟棄
							select {
							case q.ch <- entry:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
