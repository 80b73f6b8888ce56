package testutil

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"event-ticketing/config"
	"event-ticketing/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// SetupDB 連線測試資料庫並建立 schema
func SetupDB() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := database.InitializeSchema(context.Background(), testDB); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %v", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	testDB, dbCleanup, err := SetupDB()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := config.LoadTestConfig()
	testRdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		dbCleanup()
		return nil, nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		dbCleanup()
		testRdb.Close()
		log.Println("Test redis closed")
	}

	return testDB, testRdb, cleanup, nil
}

// Truncate 清空所有測試資料，保留 schema
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"TRUNCATE activity_logs, order_items, orders, tickets, events, categories, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func CreateUser(t *testing.T, pool *pgxpool.Pool, firstName, email string) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, firstName, "Tester", email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

func CreateCategory(t *testing.T, pool *pgxpool.Pool, name string) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return id
}

// CreateEvent 建立 active 活動
func CreateEvent(t *testing.T, pool *pgxpool.Pool, categoryID int, title string, eventDate time.Time) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(), `
		INSERT INTO events (category_id, title, event_date, location, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id
	`, categoryID, title, eventDate, "Lisboa").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

func CreateTicket(t *testing.T, pool *pgxpool.Pool, eventID int, ticketType string, price string, stock int) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(), `
		INSERT INTO tickets (event_id, ticket_type, price, quantity_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, eventID, ticketType, decimal.RequireFromString(price), stock).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
	return id
}

func TicketStock(t *testing.T, pool *pgxpool.Pool, ticketID int) int {
	t.Helper()

	var stock int
	err := pool.QueryRow(context.Background(),
		`SELECT quantity_available FROM tickets WHERE id = $1`, ticketID).Scan(&stock)
	if err != nil {
		t.Fatalf("Failed to read ticket stock: %v", err)
	}
	return stock
}

// RowCount 輔助函數：檢查資料表的行數
func RowCount(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}
