package worker

import (
	"context"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/service"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type ActivityWorker interface {
	// 訂閱稽核紀錄隊列，回傳的 channel 在消費結束後關閉
	Start(ctx context.Context) (<-chan struct{}, error)
}

type ActivityWorkerImpl struct {
	service service.ActivityService
	queue   queue.ActivityQueue
}

func NewActivityWorker(service service.ActivityService, queue queue.ActivityQueue) ActivityWorker {
	return &ActivityWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *ActivityWorkerImpl) Start(ctx context.Context) (<-chan struct{}, error) {
	msgs, err := w.queue.SubscribeActivities(ctx)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	log := logger.WithComponent("activity-worker")

	go func() {
		defer close(done)
		for msg := range msgs {
			// 把「訊息」變成 activity_logs 的一筆資料
			if err := w.service.Persist(ctx, msg.Data); err != nil {
				// 資料庫暫時連不上，留給隊列重試
				log.Warn("persist activity failed, requeue",
					zap.Int("user_id", msg.Data.UserID),
					zap.String("action", msg.Data.Action),
					zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return done, nil
}
