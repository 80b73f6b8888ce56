package service

import (
	"context"
	"time"

	"event-ticketing/internal/metrics"
	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

type ActivityService interface {
	// Record 非同步送出稽核紀錄；失敗只寫 log，不影響呼叫端
	Record(ctx context.Context, entry *model.ActivityLog)
	// Persist 由 worker 呼叫，把紀錄寫入 activity_logs
	Persist(ctx context.Context, entry *model.ActivityLog) error
}

type ActivityServiceImpl struct {
	queue        queue.ActivityQueue
	activityRepo repository.ActivityRepository
}

func NewActivityService(queue queue.ActivityQueue, activityRepo repository.ActivityRepository) ActivityService {
	return &ActivityServiceImpl{
		queue:        queue,
		activityRepo: activityRepo,
	}
}

func (s *ActivityServiceImpl) Record(ctx context.Context, entry *model.ActivityLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	// 請求結束後仍要送出，因此不沿用呼叫端的取消訊號
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.queue.PublishActivity(ctx, entry)
	metrics.ObserveActivity("publish", err)
	if err != nil {
		logger.WithComponent("activity").Warn("publish activity failed",
			zap.Int("user_id", entry.UserID),
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}

func (s *ActivityServiceImpl) Persist(ctx context.Context, entry *model.ActivityLog) error {
	_, err := s.activityRepo.Create(ctx, entry)
	metrics.ObserveActivity("persist", err)
	return err
}
