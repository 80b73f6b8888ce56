package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "activity:stream"
	ConsumerGroupName  = "activity-writers"
	ConsumerNamePrefix = "writer"

	payloadField = "activity"
	readCount    = 10
)

// RedisStreamConfig 可注入的逾時與重試設定；零值欄位使用預設。
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領取
	MaxRetryCount      int           // 超過此次數視為毒藥消息並丟棄
	ReadGroupBlockTime time.Duration // XReadGroup 阻塞時間
	MaxLen             int64         // stream 約略保留的長度，0 表示不修剪
}

func (c RedisStreamConfig) withDefaults() RedisStreamConfig {
	if c.ClaimMinIdleTime <= 0 {
		c.ClaimMinIdleTime = 5 * time.Second
	}
	if c.MaxRetryCount <= 0 {
		c.MaxRetryCount = 5
	}
	if c.ReadGroupBlockTime <= 0 {
		c.ReadGroupBlockTime = 2 * time.Second
	}
	return c
}

type RedisStreamActivityQueueImpl struct {
	client       *redis.Client
	consumerName string
	cfg          RedisStreamConfig
	log          *zap.Logger
}

// NewRedisStreamActivityQueue 建立 Redis Stream 版 ActivityQueue，consumerID 為空時自動產生。
func NewRedisStreamActivityQueue(ctx context.Context, client *redis.Client, consumerID string, cfg RedisStreamConfig) (ActivityQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}
	q := &RedisStreamActivityQueueImpl{
		client:       client,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg.withDefaults(),
		log:          logger.WithComponent("activity-stream"),
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamActivityQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamActivityQueueImpl) PublishActivity(ctx context.Context, entry *model.ActivityLog) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: StreamKey,
		ID:     "*",
		Values: map[string]interface{}{payloadField: string(payload)},
	}
	if q.cfg.MaxLen > 0 {
		args.MaxLen = q.cfg.MaxLen
		args.Approx = true
	}

	if err := q.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamActivityQueueImpl) SubscribeActivities(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		q.runAutoClaim(ctx, out)
	}()
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			q.readNew(ctx, out)
		}
	}()
	// 兩個送出端都結束後才關閉 out
	go func() {
		wg.Wait()
		close(out)
	}()
	return out, nil
}

// readNew 只讀 ">"（新訊息）；已投遞過但未 ack 的訊息由 XAUTOCLAIM 逾時後領回重試
func (q *RedisStreamActivityQueueImpl) readNew(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    ConsumerGroupName,
		Consumer: q.consumerName,
		Streams:  []string{StreamKey, ">"},
		Count:    readCount,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if err == redis.Nil {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		q.log.Error("XReadGroup failed", zap.Error(err))
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
		}
		return
	}

	for _, stream := range streams {
		if stream.Stream != StreamKey {
			continue
		}
		if !q.deliverAll(ctx, out, stream.Messages, false) {
			return
		}
	}
}

// deliverAll 回傳 false 表示 ctx 已結束
func (q *RedisStreamActivityQueueImpl) deliverAll(ctx context.Context, out chan<- Delivery, msgs []redis.XMessage, claimed bool) bool {
	for _, msg := range msgs {
		if claimed && q.exceededRetries(ctx, msg.ID) {
			continue
		}
		d, ok := q.newDelivery(ctx, msg)
		if !ok {
			continue
		}
		select {
		case out <- d:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// exceededRetries 超過重試上限的毒藥消息直接 ack 丟棄
func (q *RedisStreamActivityQueueImpl) exceededRetries(ctx context.Context, messageID string) bool {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: StreamKey,
		Group:  ConsumerGroupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil && err != redis.Nil {
		q.log.Warn("XPendingExt failed", zap.String("message_id", messageID), zap.Error(err))
		return false
	}
	if len(pending) == 0 {
		return false
	}

	retries := int(pending[0].RetryCount)
	if retries < q.cfg.MaxRetryCount {
		return false
	}

	q.log.Warn("discard poison message",
		zap.String("message_id", messageID),
		zap.Int("retries", retries),
		zap.Int("max_retries", q.cfg.MaxRetryCount))
	q.ack(ctx, messageID)
	return true
}

// runAutoClaim 定時用 XAUTOCLAIM 領取超時未 ack 的消息
func (q *RedisStreamActivityQueueImpl) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	start := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		claimed, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   StreamKey,
			Group:    ConsumerGroupName,
			Consumer: q.consumerName,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Count:    readCount,
			Start:    start,
		}).Result()
		if err != nil && err != redis.Nil {
			if ctx.Err() == nil {
				q.log.Error("XAutoClaim failed", zap.Error(err))
			}
			continue
		}

		start = next
		if start == "" {
			start = "0-0"
		}

		if !q.deliverAll(ctx, out, claimed, true) {
			return
		}
	}
}

func (q *RedisStreamActivityQueueImpl) ack(ctx context.Context, messageID string) {
	if err := q.client.XAck(ctx, StreamKey, ConsumerGroupName, messageID).Err(); err != nil {
		q.log.Error("XAck failed", zap.String("message_id", messageID), zap.Error(err))
	}
}

// newDelivery 從 Redis 消息組裝 Delivery；格式錯誤的消息直接 ack 掉
func (q *RedisStreamActivityQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) (Delivery, bool) {
	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		q.log.Warn("invalid message: missing activity field", zap.String("message_id", msg.ID))
		q.ack(ctx, msg.ID)
		return Delivery{}, false
	}

	var entry model.ActivityLog
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		q.log.Warn("unmarshal activity failed", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return Delivery{}, false
	}

	msgID := msg.ID
	return Delivery{
		Data: &entry,
		Ack:  func() { q.ack(ctx, msgID) },
		Nack: func(requeue bool) {
			if requeue {
				// 留在 PEL，等 ClaimMinIdleTime 後由 XAUTOCLAIM 領回，形成延遲重試
				q.log.Info("message nack(requeue), will retry",
					zap.String("message_id", msgID),
					zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			q.ack(ctx, msgID)
		},
	}, true
}
