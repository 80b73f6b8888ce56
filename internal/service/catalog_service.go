package service

import (
	"context"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type CatalogService interface {
	// ListEvents 列出 active 活動；categoryID 為 0 時列出全部分類
	ListEvents(ctx context.Context, categoryID int) ([]*model.EventWithTickets, error)
	GetEvent(ctx context.Context, id int) (*model.EventWithTickets, error)
	GetTicketsForEvent(ctx context.Context, eventID int) ([]*model.Ticket, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]*model.Category, error)
}

type CatalogServiceImpl struct {
	eventRepository    repository.EventRepository
	ticketRepository   repository.TicketRepository
	categoryRepository repository.CategoryRepository
	now                func() time.Time
}

func NewCatalogService(
	eventRepository repository.EventRepository,
	ticketRepository repository.TicketRepository,
	categoryRepository repository.CategoryRepository,
) CatalogService {
	return &CatalogServiceImpl{
		eventRepository:    eventRepository,
		ticketRepository:   ticketRepository,
		categoryRepository: categoryRepository,
		now:                time.Now,
	}
}

// ListEvents 讀取前會先把已結束的活動標記為 terminated。
// 只有這裡會觸發此狀態轉換，結帳與訂單查詢都不會。
func (s *CatalogServiceImpl) ListEvents(ctx context.Context, categoryID int) ([]*model.EventWithTickets, error) {
	s.terminateExpired(ctx)
	return s.eventRepository.ListActive(ctx, categoryID)
}

func (s *CatalogServiceImpl) GetEvent(ctx context.Context, id int) (*model.EventWithTickets, error) {
	return s.eventRepository.FindByID(ctx, id)
}

func (s *CatalogServiceImpl) GetTicketsForEvent(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	// 確認活動存在，避免不存在的活動回傳空陣列
	if _, err := s.eventRepository.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ticketRepository.ListByEventID(ctx, eventID)
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context, activeOnly bool) ([]*model.Category, error) {
	if activeOnly {
		s.terminateExpired(ctx)
		return s.categoryRepository.ListWithActiveEvents(ctx)
	}
	return s.categoryRepository.List(ctx)
}

// terminateExpired 失敗不影響列表，最多讓已結束的活動多顯示一段時間
func (s *CatalogServiceImpl) terminateExpired(ctx context.Context) {
	affected, err := s.eventRepository.TerminateExpired(ctx, model.ExpiryCutoff(s.now()))
	if err != nil {
		logger.WithComponent("catalog").Warn("terminate expired events failed", zap.Error(err))
		return
	}
	if affected > 0 {
		logger.WithComponent("catalog").Info("events terminated", zap.Int64("count", affected))
	}
}
