package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []struct {
	name string
	ddl  string
}{
	{"categories", `
		CREATE TABLE IF NOT EXISTS categories (
			id   SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE
		)`},
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id         SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name  VARCHAR(100) NOT NULL,
			email      VARCHAR(255) NOT NULL UNIQUE,
			role       SMALLINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"events", `
		CREATE TABLE IF NOT EXISTS events (
			id          SERIAL PRIMARY KEY,
			category_id INT NOT NULL REFERENCES categories(id),
			title       VARCHAR(255) NOT NULL,
			description TEXT,
			event_date  TIMESTAMPTZ NOT NULL,
			location    VARCHAR(255) NOT NULL DEFAULT '',
			image_url   VARCHAR(500),
			status      VARCHAR(20) NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'terminated')),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"tickets", `
		CREATE TABLE IF NOT EXISTS tickets (
			id                 SERIAL PRIMARY KEY,
			event_id           INT NOT NULL REFERENCES events(id),
			ticket_type        VARCHAR(100) NOT NULL,
			price              NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			quantity_available INT NOT NULL CHECK (quantity_available >= 0)
		)`},
	{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			id          SERIAL PRIMARY KEY,
			user_id     INT NOT NULL REFERENCES users(id),
			total_price NUMERIC(12, 2) NOT NULL,
			status      VARCHAR(20) NOT NULL,
			order_date  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"order_items", `
		CREATE TABLE IF NOT EXISTS order_items (
			id               SERIAL PRIMARY KEY,
			order_id         INT NOT NULL REFERENCES orders(id),
			ticket_id        INT NOT NULL REFERENCES tickets(id),
			quantity         INT NOT NULL CHECK (quantity > 0),
			price_per_ticket NUMERIC(10, 2) NOT NULL
		)`},
	{"activity_logs", `
		CREATE TABLE IF NOT EXISTS activity_logs (
			id          SERIAL PRIMARY KEY,
			user_id     INT,
			action      VARCHAR(50) NOT NULL,
			description TEXT NOT NULL,
			ip_address  VARCHAR(45),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"idx_events_status_date", `CREATE INDEX IF NOT EXISTS idx_events_status_date ON events (status, event_date)`},
	{"idx_tickets_event", `CREATE INDEX IF NOT EXISTS idx_tickets_event ON tickets (event_id)`},
	{"idx_orders_user", `CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id, order_date DESC)`},
	{"idx_order_items_order", `CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`},
}

// InitializeSchema 建立所有資料表，可重複執行
func InitializeSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("creating %s: %w", stmt.name, err)
		}
	}
	return nil
}
