package service

import (
	"context"

	"event-ticketing/internal/cache"
	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
)

type CartService interface {
	// AddItem 確認票種存在後才加入購物車；庫存在結帳時才檢查
	AddItem(ctx context.Context, userID int, item model.CartItem) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, userID int, ticketID int) ([]model.CartItem, error)
	GetCart(ctx context.Context, userID int) ([]model.CartItem, error)
}

type CartServiceImpl struct {
	store            cache.CartStore
	ticketRepository repository.TicketRepository
}

func NewCartService(store cache.CartStore, ticketRepository repository.TicketRepository) CartService {
	return &CartServiceImpl{
		store:            store,
		ticketRepository: ticketRepository,
	}
}

func (s *CartServiceImpl) AddItem(ctx context.Context, userID int, item model.CartItem) ([]model.CartItem, error) {
	if _, err := model.NormalizeCartItems([]model.CartItem{item}); err != nil {
		return nil, err
	}
	if _, err := s.ticketRepository.FindByID(ctx, item.TicketID); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, userID, item.TicketID, item.Quantity); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, userID)
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, userID int, ticketID int) ([]model.CartItem, error) {
	if err := s.store.Remove(ctx, userID, ticketID); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, userID)
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID int) ([]model.CartItem, error) {
	return s.store.Get(ctx, userID)
}
