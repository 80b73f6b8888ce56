package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"event-ticketing/config"
	"event-ticketing/internal/cache"
	"event-ticketing/internal/database"
	"event-ticketing/internal/handler"
	"event-ticketing/internal/metrics"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/service"
	"event-ticketing/internal/worker"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("server")

	cfg := config.LoadConfig()
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.InitializeSchema(ctx, pool); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories
	ticketRepository := repository.NewTicketRepository(pool)
	eventRepository := repository.NewEventRepository(pool)
	orderRepository := repository.NewOrderRepository(pool)
	categoryRepository := repository.NewCategoryRepository(pool)
	activityRepository := repository.NewActivityRepository(pool)
	transactor := repository.NewTransactor(pool, cfg.Checkout.LockTimeout)
	cartStore := cache.NewRedisCartStore(rdb, cfg.Cart.TTL)

	activityQueue, err := queue.NewRedisStreamActivityQueue(ctx, rdb, cfg.Activity.ConsumerID, queue.RedisStreamConfig{
		ClaimMinIdleTime:   cfg.Activity.ClaimMinIdleTime,
		MaxRetryCount:      cfg.Activity.MaxRetryCount,
		ReadGroupBlockTime: cfg.Activity.ReadGroupBlockTime,
		MaxLen:             cfg.Activity.StreamMaxLen,
	})
	if err != nil {
		log.Fatal("Failed to initialize activity queue", zap.Error(err))
	}

	// services
	activityService := service.NewActivityService(activityQueue, activityRepository)
	cartService := service.NewCartService(cartStore, ticketRepository)
	catalogService := service.NewCatalogService(eventRepository, ticketRepository, categoryRepository)
	orderService := service.NewOrderService(orderRepository)
	checkoutService := service.NewCheckoutService(
		transactor,
		ticketRepository,
		orderRepository,
		cartStore,
		activityService,
		cfg.Checkout.RequestTimeout,
	)

	workerDone, err := worker.NewActivityWorker(activityService, activityQueue).Start(ctx)
	if err != nil {
		log.Fatal("Failed to start activity worker", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery(), handler.CorrelationID(), handler.RequestLogger(), metrics.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := handler.Auth(cfg.Auth.JWTSecret)
	handler.NewCatalogHandler(catalogService).RegisterRoutes(router)
	handler.NewCartHandler(cartService).RegisterRoutes(router, auth)
	handler.NewCheckoutHandler(checkoutService, cartService).RegisterRoutes(router, auth)
	handler.NewOrderHandler(orderService).RegisterRoutes(router, auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Activity worker did not drain before shutdown timeout")
	}
}
