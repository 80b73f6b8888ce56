package repository

import (
	"context"
	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Ticket, error)
	DecrementStock(ctx context.Context, tx pgx.Tx, id int, quantity int) error
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (event_id, ticket_type, price, quantity_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, ticket_type, price, quantity_available
	`

	err := r.pool.QueryRow(ctx, query,
		ticket.EventID, ticket.TicketType, ticket.Price, ticket.QuantityAvailable,
	).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.QuantityAvailable,
	)

	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := `
		SELECT id, event_id, ticket_type, price, quantity_available
		FROM tickets
		WHERE id = $1
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.QuantityAvailable,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &apperrors.TicketNotFoundError{TicketID: id}
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	query := `
		SELECT id, event_id, ticket_type, price, quantity_available
		FROM tickets
		WHERE event_id = $1
		ORDER BY price ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.EventID,
			&ticket.TicketType,
			&ticket.Price,
			&ticket.QuantityAvailable,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// FindByIDWithLock 取得 row lock 直到交易結束，只給結帳使用
func (r *TicketRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Ticket, error) {
	query := `
		SELECT id, event_id, ticket_type, price, quantity_available
		FROM tickets
		WHERE id = $1
		FOR UPDATE
	`

	var ticket model.Ticket
	err := tx.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.QuantityAvailable,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &apperrors.TicketNotFoundError{TicketID: id}
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) DecrementStock(ctx context.Context, tx pgx.Tx, id int, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	query := `
		UPDATE tickets
		SET quantity_available = quantity_available - $1
		WHERE id = $2 AND quantity_available >= $1
	`

	result, err := tx.Exec(ctx, query, quantity, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// 沒有更新到任何列：重新讀取實際庫存，讓錯誤訊息帶上正確的剩餘數量
		var available int
		err := tx.QueryRow(ctx, `SELECT quantity_available FROM tickets WHERE id = $1`, id).Scan(&available)
		if err == pgx.ErrNoRows {
			return &apperrors.TicketNotFoundError{TicketID: id}
		}
		if err != nil {
			return err
		}
		return &apperrors.StockError{TicketID: id, Requested: quantity, Available: available}
	}

	return nil
}
