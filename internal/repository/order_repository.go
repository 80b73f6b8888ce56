package repository

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// ListWithItems 管理端：全部訂單含購買者資訊
	ListWithItems(ctx context.Context) ([]*model.OrderWithItems, error)
	// ListByUserID 購買紀錄
	ListByUserID(ctx context.Context, userID int) ([]*model.OrderWithItems, error)
	FindByID(ctx context.Context, id int) (*model.OrderWithItems, error)
	Stats(ctx context.Context) (*model.OrderStats, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)
	CreateItem(ctx context.Context, tx pgx.Tx, item *model.OrderItem) (*model.OrderItem, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{
		pool: pool,
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	query := `
		INSERT INTO orders (user_id, total_price, status, order_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		order.UserID, order.TotalPrice, order.Status, order.OrderDate,
	).Scan(&order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *OrderRepositoryImpl) CreateItem(ctx context.Context, tx pgx.Tx, item *model.OrderItem) (*model.OrderItem, error) {
	query := `
		INSERT INTO order_items (order_id, ticket_id, quantity, price_per_ticket)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		item.OrderID, item.TicketID, item.Quantity, item.PricePerTicket,
	).Scan(&item.ID)
	if err != nil {
		return nil, err
	}

	return item, nil
}

const orderLinesSelect = `
	SELECT o.id, o.user_id, o.total_price, o.status, o.order_date,
		u.id, u.first_name, u.last_name, u.email,
		oi.id, oi.ticket_id, oi.quantity, oi.price_per_ticket,
		t.ticket_type, e.title, e.event_date, e.location, e.image_url
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN order_items oi ON oi.order_id = o.id
	JOIN tickets t ON t.id = oi.ticket_id
	JOIN events e ON e.id = t.event_id
`

const orderLinesOrderBy = `
	ORDER BY o.order_date DESC, o.id DESC, oi.id ASC
`

func (r *OrderRepositoryImpl) ListWithItems(ctx context.Context) ([]*model.OrderWithItems, error) {
	return r.queryOrders(ctx, orderLinesSelect+orderLinesOrderBy, true)
}

func (r *OrderRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.OrderWithItems, error) {
	return r.queryOrders(ctx, orderLinesSelect+` WHERE o.user_id = $1 `+orderLinesOrderBy, false, userID)
}

// FindByID 找不到時回傳 nil, nil
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.OrderWithItems, error) {
	orders, err := r.queryOrders(ctx, orderLinesSelect+` WHERE o.id = $1 `+orderLinesOrderBy, true, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return orders[0], nil
}

// queryOrders 把 join 後的扁平資料依訂單分組，保留 SQL 的排序
func (r *OrderRepositoryImpl) queryOrders(ctx context.Context, query string, withBuyer bool, args ...any) ([]*model.OrderWithItems, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.OrderWithItems, 0)
	var current *model.OrderWithItems

	for rows.Next() {
		var (
			order model.Order
			buyer model.UserSummary
			item  model.OrderItem
		)
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalPrice,
			&order.Status,
			&order.OrderDate,
			&buyer.ID,
			&buyer.FirstName,
			&buyer.LastName,
			&buyer.Email,
			&item.ID,
			&item.TicketID,
			&item.Quantity,
			&item.PricePerTicket,
			&item.TicketType,
			&item.EventTitle,
			&item.EventDate,
			&item.EventLocation,
			&item.EventImageURL,
		)
		if err != nil {
			return nil, err
		}
		item.OrderID = order.ID

		if current == nil || current.ID != order.ID {
			current = &model.OrderWithItems{
				Order: order,
				Items: make([]*model.OrderItem, 0, 1),
			}
			if withBuyer {
				current.Buyer = &buyer
			}
			orders = append(orders, current)
		}
		current.Items = append(current.Items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) Stats(ctx context.Context) (*model.OrderStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders)
	`

	var stats model.OrderStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalEvents,
		&stats.TotalUsers,
		&stats.TotalOrders,
		&stats.Revenue,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
