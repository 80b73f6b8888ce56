package cache

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// CartStore 以 Redis hash 保存使用者的購物車：field 為 ticket id，value 為數量
type CartStore interface {
	// Add 累加數量，並刷新 TTL
	Add(ctx context.Context, userID int, ticketID int, quantity int) error
	// Remove 移除一個票種；不存在時回傳 ErrCartItemNotFound
	Remove(ctx context.Context, userID int, ticketID int) error
	// Get 依 ticket id 排序回傳
	Get(ctx context.Context, userID int) ([]model.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type RedisCartStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &RedisCartStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// 購物車 key
func (s *RedisCartStoreImpl) getCartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *RedisCartStoreImpl) Add(ctx context.Context, userID int, ticketID int, quantity int) error {
	if ticketID <= 0 {
		return apperrors.ErrInvalidInput
	}
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	key := s.getCartKey(userID)
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, strconv.Itoa(ticketID), int64(quantity))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (s *RedisCartStoreImpl) Remove(ctx context.Context, userID int, ticketID int) error {
	removed, err := s.client.HDel(ctx, s.getCartKey(userID), strconv.Itoa(ticketID)).Result()
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrCartItemNotFound
	}
	return nil
}

func (s *RedisCartStoreImpl) Get(ctx context.Context, userID int) ([]model.CartItem, error) {
	values, err := s.client.HGetAll(ctx, s.getCartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	items := make([]model.CartItem, 0, len(values))
	for field, value := range values {
		ticketID, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid cart field %q: %w", field, err)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid cart quantity for ticket %d: %w", ticketID, err)
		}
		items = append(items, model.CartItem{TicketID: ticketID, Quantity: quantity})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].TicketID < items[j].TicketID
	})
	return items, nil
}

func (s *RedisCartStoreImpl) Clear(ctx context.Context, userID int) error {
	return s.client.Del(ctx, s.getCartKey(userID)).Err()
}
