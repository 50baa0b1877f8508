package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-engine/internal/api/handlers"
	"auction-engine/internal/config"
	"auction-engine/internal/domain"
	"auction-engine/internal/infrastructure/memory"
	"auction-engine/internal/infrastructure/mysql"
	redisinfra "auction-engine/internal/infrastructure/redis"
	wsinfra "auction-engine/internal/infrastructure/websocket"
	"auction-engine/internal/services"
	"auction-engine/pkg/logger"

	redisClient "github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (defaults to the search path)")
	flag.Parse()

	log := logger.New()
	log.Info("Starting auction engine")

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Storage backend
	var (
		itemRepo domain.ItemRepository
		bidRepo  domain.BidRepository
		userDir  domain.UserDirectory
	)
	switch cfg.Storage.Backend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			log.Error("Failed to open MySQL", "error", err)
			os.Exit(1)
		}
		defer func(db *sql.DB) {
			if err := db.Close(); err != nil {
				log.Error("Failed to close MySQL connection", "error", err)
			}
		}(db)

		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			log.Error("Failed to ping MySQL", "error", err)
			os.Exit(1)
		}
		log.Info("Connected to MySQL")

		itemRepo = mysql.NewMySQLItemRepository(db)
		bidRepo = mysql.NewMySQLBidRepository(db)
		userDir = mysql.NewMySQLUserDirectory(db)

	case "memory":
		log.Info("Using in-memory storage")
		itemRepo = memory.NewItemRepository()
		bidRepo = memory.NewBidRepository()
		userDir = memory.NewUserDirectory()
	}

	// Event broker (optional)
	var events domain.EventPublisher = services.NopEventPublisher{}
	var subscriber domain.EventSubscriber
	if cfg.Redis.Enabled {
		rdb := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("Connected to Redis", "address", cfg.Redis.Address)

		events = redisinfra.NewEventPublisher(rdb)
		subscriber = redisinfra.NewEventSubscriber(rdb, log)
	}

	// Engine services share one lock table so every mutating operation on an
	// item serializes with the rest.
	locks := services.NewItemLocks()
	clock := domain.SystemClock{}

	itemService := services.NewItemService(itemRepo, locks, clock, events, log)
	bidService := services.NewBidService(itemRepo, bidRepo, locks, clock, events, log)
	dutchService := services.NewDutchService(itemRepo, locks, clock, events, log)
	settlementService := services.NewSettlementService(itemRepo, userDir, locks, clock, events, log)

	// Live feed
	feedHub := wsinfra.NewFeedHub(log)
	feedHandler := wsinfra.NewFeedHandler(itemRepo, feedHub, log)

	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()
	if subscriber != nil {
		go func() {
			if err := subscriber.SubscribeToAuctionEvents(subscriberCtx, feedHub.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Event subscriber stopped", "error", err)
			}
		}()
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","user_agent":"${user_agent}","status":${status},"error":"${error}","latency":${latency},"latency_human":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET, echo.HEAD, echo.PUT, echo.PATCH,
			echo.POST, echo.DELETE, echo.OPTIONS,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))

	// Initialize handlers
	itemHandler := handlers.NewItemHandler(itemService, log)
	bidHandler := handlers.NewBidHandler(bidService, dutchService, log)
	settlementHandler := handlers.NewSettlementHandler(settlementService, log)

	// API routes
	api := e.Group("/api")
	api.GET("/items", itemHandler.ListItems)
	api.GET("/items/active", itemHandler.ListActiveItems)
	api.GET("/items/ended", itemHandler.ListEndedItems)
	api.GET("/items/search", itemHandler.SearchItems)
	api.POST("/items", itemHandler.CreateItem)
	api.GET("/items/:id", itemHandler.GetItem)
	api.POST("/items/:id/end", itemHandler.EndAuction)
	api.POST("/items/:id/bids", bidHandler.PlaceBid)
	api.GET("/items/:id/bids", bidHandler.ListBids)
	api.GET("/items/:id/dutch-price", bidHandler.DutchPrice)
	api.POST("/items/:id/accept", bidHandler.AcceptDutch)
	api.POST("/items/:id/pay", settlementHandler.Pay)
	api.GET("/items/:id/receipt", settlementHandler.Receipt)
	api.GET("/items/:id/feed", feedHandler.Serve)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "auction-engine",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting auction engine server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auction engine...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	stopSubscriber()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Auction engine stopped")
}
