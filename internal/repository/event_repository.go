package repository

import (
	"context"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.EventWithTickets, error)
	// ListActive 回傳 active 活動與其票種；categoryID 為 0 時不過濾分類
	ListActive(ctx context.Context, categoryID int) ([]*model.EventWithTickets, error)
	// TerminateExpired 把 event_date 早於 cutoff 的 active 活動標記為 terminated，回傳更新筆數
	TerminateExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventSelect = `
	SELECT e.id, e.category_id, e.title, e.description, e.event_date,
		e.location, e.image_url, e.status, e.created_at,
		c.name,
		COALESCE((
			SELECT SUM(oi.quantity)
			FROM order_items oi
			JOIN tickets t ON t.id = oi.ticket_id
			WHERE t.event_id = e.id
		), 0) AS tickets_sold
	FROM events e
	JOIN categories c ON c.id = e.category_id
`

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.Status == "" {
		event.Status = model.EventStatusActive
	}

	query := `
		INSERT INTO events (category_id, title, description, event_date, location, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		event.CategoryID, event.Title, event.Description, event.EventDate,
		event.Location, event.ImageURL, event.Status,
	).Scan(
		&event.ID,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.EventWithTickets, error) {
	event, err := scanEvent(r.pool.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if err := r.attachTickets(ctx, []*model.EventWithTickets{event}); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) ListActive(ctx context.Context, categoryID int) ([]*model.EventWithTickets, error) {
	query := eventSelect + `
		WHERE e.status = 'active' AND ($1 = 0 OR e.category_id = $1)
		ORDER BY e.event_date ASC, e.id ASC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.EventWithTickets, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTickets(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) TerminateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE events
		SET status = 'terminated'
		WHERE event_date < $1 AND status <> 'terminated'
	`

	result, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// attachTickets 一次查出所有活動的票種，避免每個活動各查一次
func (r *EventRepositoryImpl) attachTickets(ctx context.Context, events []*model.EventWithTickets) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]int, 0, len(events))
	byID := make(map[int]*model.EventWithTickets, len(events))
	for _, e := range events {
		e.Tickets = make([]*model.Ticket, 0)
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}

	query := `
		SELECT id, event_id, ticket_type, price, quantity_available
		FROM tickets
		WHERE event_id = ANY($1)
		ORDER BY event_id ASC, price ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticket model.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.EventID,
			&ticket.TicketType,
			&ticket.Price,
			&ticket.QuantityAvailable,
		); err != nil {
			return err
		}
		if e, ok := byID[ticket.EventID]; ok {
			e.Tickets = append(e.Tickets, &ticket)
		}
	}
	return rows.Err()
}

func scanEvent(row pgx.Row) (*model.EventWithTickets, error) {
	var event model.EventWithTickets
	err := row.Scan(
		&event.ID,
		&event.CategoryID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Location,
		&event.ImageURL,
		&event.Status,
		&event.CreatedAt,
		&event.CategoryName,
		&event.TicketsSold,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
