package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-ticketing/internal/cache"
	"event-ticketing/internal/metrics"
	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	pgLockNotAvailable = "55P03"
	pgDeadlockDetected = "40P01"
)

type CheckoutService interface {
	// Checkout 把購物車轉為訂單；成功時清空使用者的 session cart
	Checkout(ctx context.Context, cmd model.CheckoutCommand) (*model.CheckoutResult, error)
}

type CheckoutServiceImpl struct {
	transactor       repository.Transactor
	ticketRepository repository.TicketRepository
	orderRepository  repository.OrderRepository
	cartStore        cache.CartStore
	activity         ActivityService
	timeout          time.Duration
	now              func() time.Time
}

func NewCheckoutService(
	transactor repository.Transactor,
	ticketRepository repository.TicketRepository,
	orderRepository repository.OrderRepository,
	cartStore cache.CartStore,
	activity ActivityService,
	timeout time.Duration,
) CheckoutService {
	return &CheckoutServiceImpl{
		transactor:       transactor,
		ticketRepository: ticketRepository,
		orderRepository:  orderRepository,
		cartStore:        cartStore,
		activity:         activity,
		timeout:          timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// lockedLine 鎖定後的明細，價格取自資料庫
type lockedLine struct {
	ticketID int
	quantity int
	price    decimal.Decimal
}

func (s *CheckoutServiceImpl) Checkout(ctx context.Context, cmd model.CheckoutCommand) (*model.CheckoutResult, error) {
	start := time.Now()
	log := logger.WithComponent("checkout").With(zap.Int("user_id", cmd.UserID))

	// 驗證失敗時不碰任何儲存層
	items, err := model.NormalizeCartItems(cmd.Items)
	if err != nil {
		metrics.ObserveCheckout(outcomeOf(err), time.Since(start))
		return nil, err
	}

	txCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var result *model.CheckoutResult
	err = s.transactor.WithinTransaction(txCtx, func(ctx context.Context, tx pgx.Tx) error {
		var txErr error
		result, txErr = s.placeOrder(ctx, tx, cmd.UserID, items)
		return txErr
	})
	if err != nil {
		err = s.classify(txCtx, err)
		metrics.ObserveCheckout(outcomeOf(err), time.Since(start))

		if apperrors.KindOf(err) == apperrors.KindPersistence {
			log.Error("checkout rolled back", zap.Error(err))
		} else {
			log.Info("checkout rejected", zap.Error(err))
		}
		s.activity.Record(ctx, &model.ActivityLog{
			UserID:      cmd.UserID,
			Action:      model.ActivityCheckoutFailed,
			Description: fmt.Sprintf("checkout failed: %v", err),
			IPAddress:   cmd.ClientIP,
		})
		return nil, err
	}

	units := 0
	for _, item := range items {
		units += item.Quantity
	}
	metrics.ObserveCheckout(metrics.OutcomeCompleted, time.Since(start))
	metrics.AddTicketsSold(units)
	log.Info("checkout committed",
		zap.Int("order_id", result.OrderID),
		zap.String("total_price", result.TotalPrice.StringFixed(2)),
		zap.Int("units", units))

	// 訂單已提交，清空購物車失敗只記錄
	if err := s.cartStore.Clear(context.WithoutCancel(ctx), cmd.UserID); err != nil {
		log.Warn("clear cart failed", zap.Error(err))
	}

	s.activity.Record(ctx, &model.ActivityLog{
		UserID:      cmd.UserID,
		Action:      model.ActivityCheckout,
		Description: describeOrder(result.OrderID, items),
		IPAddress:   cmd.ClientIP,
	})

	return result, nil
}

// placeOrder 依 ticket id 由小到大取得 row lock，全部通過檢查後才寫入訂單
func (s *CheckoutServiceImpl) placeOrder(ctx context.Context, tx pgx.Tx, userID int, items []model.CartItem) (*model.CheckoutResult, error) {
	lines := make([]lockedLine, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		ticket, err := s.ticketRepository.FindByIDWithLock(ctx, tx, item.TicketID)
		if err != nil {
			return nil, err
		}
		if !ticket.HasStock(item.Quantity) {
			return nil, &apperrors.StockError{
				TicketID:  ticket.ID,
				Requested: item.Quantity,
				Available: ticket.QuantityAvailable,
			}
		}
		lines = append(lines, lockedLine{ticketID: ticket.ID, quantity: item.Quantity, price: ticket.Price})
		total = total.Add(ticket.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order, err := s.orderRepository.Create(ctx, tx, &model.Order{
		UserID:     userID,
		TotalPrice: total,
		Status:     model.OrderStatusCompleted,
		OrderDate:  s.now(),
	})
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if _, err := s.orderRepository.CreateItem(ctx, tx, &model.OrderItem{
			OrderID:        order.ID,
			TicketID:       line.ticketID,
			Quantity:       line.quantity,
			PricePerTicket: line.price,
		}); err != nil {
			return nil, err
		}
		if err := s.ticketRepository.DecrementStock(ctx, tx, line.ticketID, line.quantity); err != nil {
			return nil, err
		}
	}

	return &model.CheckoutResult{OrderID: order.ID, TotalPrice: total}, nil
}

// classify 保留預期內的業務錯誤，其餘一律包成 ErrCheckoutFailed
func (s *CheckoutServiceImpl) classify(ctx context.Context, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound, apperrors.KindConflict, apperrors.KindValidation:
		return err
	}

	reason := "persistence error"
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable:
		reason = "lock timeout"
	case errors.As(err, &pgErr) && pgErr.Code == pgDeadlockDetected:
		reason = "deadlock"
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		reason = "request timeout"
	case errors.Is(err, context.Canceled):
		reason = "request canceled"
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrCheckoutFailed, reason, err)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmptyCart):
		return metrics.OutcomeEmptyCart
	case errors.Is(err, apperrors.ErrTicketNotFound):
		return metrics.OutcomeTicketNotFound
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return metrics.OutcomeInsufficientStock
	case apperrors.KindOf(err) == apperrors.KindValidation:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeFailed
	}
}

func describeOrder(orderID int, items []model.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("ticket %d x%d", item.TicketID, item.Quantity))
	}
	return fmt.Sprintf("order #%d: %s", orderID, strings.Join(parts, ", "))
}
