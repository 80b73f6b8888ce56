package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"event-ticketing/config"
	"event-ticketing/internal/cache"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/service"
	"event-ticketing/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var (
	testDB  *pgxpool.Pool
	testRdb *redis.Client
)

func TestMain(m *testing.M) {
	db, rdb, cleanup, err := testutil.Setup()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}
	testDB = db
	testRdb = rdb

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// stack 組裝真實的 repository、cart store 與 service
type stack struct {
	tickets  repository.TicketRepository
	orders   repository.OrderRepository
	cart     cache.CartStore
	queue    queue.ActivityQueue
	activity service.ActivityService
	checkout service.CheckoutService
	carts    service.CartService
	history  service.OrderService
}

func setupIntegrationTest(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()

	// 清空資料庫和 Redis
	testutil.Truncate(t, testDB)
	if err := testRdb.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}

	cfg := config.LoadTestConfig()
	activityQueue, err := queue.NewRedisStreamActivityQueue(ctx, testRdb, "", queue.RedisStreamConfig{
		ClaimMinIdleTime:   cfg.Activity.ClaimMinIdleTime,
		MaxRetryCount:      cfg.Activity.MaxRetryCount,
		ReadGroupBlockTime: cfg.Activity.ReadGroupBlockTime,
	})
	if err != nil {
		t.Fatalf("Failed to create activity queue: %v", err)
	}

	s := &stack{
		tickets: repository.NewTicketRepository(testDB),
		orders:  repository.NewOrderRepository(testDB),
		cart:    cache.NewRedisCartStore(testRdb, cfg.Cart.TTL),
		queue:   activityQueue,
	}
	s.activity = service.NewActivityService(activityQueue, repository.NewActivityRepository(testDB))
	s.carts = service.NewCartService(s.cart, s.tickets)
	s.history = service.NewOrderService(s.orders)
	s.checkout = service.NewCheckoutService(
		repository.NewTransactor(testDB, cfg.Checkout.LockTimeout),
		s.tickets,
		s.orders,
		s.cart,
		s.activity,
		cfg.Checkout.RequestTimeout,
	)
	return s
}

// seedTicket 建立一位使用者與一張票，回傳 userID、ticketID
func seedTicket(t *testing.T, price string, stock int) (int, int) {
	t.Helper()

	userID := testutil.CreateUser(t, testDB, "Ana", "ana@test.com")
	categoryID := testutil.CreateCategory(t, testDB, "Music")
	eventID := testutil.CreateEvent(t, testDB, categoryID, "Fado Night", time.Now().Add(48*time.Hour))
	ticketID := testutil.CreateTicket(t, testDB, eventID, "General", price, stock)
	return userID, ticketID
}

func newEventRepository() repository.EventRepository {
	return repository.NewEventRepository(testDB)
}

func newCategoryRepository() repository.CategoryRepository {
	return repository.NewCategoryRepository(testDB)
}
