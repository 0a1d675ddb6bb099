package main

import (
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/rizkypratama/flightdesk/internal/airports"
	"github.com/rizkypratama/flightdesk/internal/cache"
	"github.com/rizkypratama/flightdesk/internal/events"
	"github.com/rizkypratama/flightdesk/internal/handler"
	"github.com/rizkypratama/flightdesk/internal/ratelimit"
	"github.com/rizkypratama/flightdesk/internal/store"
	"github.com/rizkypratama/flightdesk/internal/upstream"
)

type Config struct {
	Port         string
	PointOfSale  string
	ShoppingURL  string
	OrdersURL    string
	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration
	KafkaBrokers []string
	KafkaTopic   string
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "flightdesk",
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit("shopping", 10, 20)
	rateLimiter.SetEndpointLimit("orders", 20, 30)

	client := upstream.NewClient(upstream.Config{
		ShoppingURL: cfg.ShoppingURL,
		OrdersURL:   cfg.OrdersURL,
		Timeout:     10 * time.Second,
		MaxRetries:  3,
		RetryDelays: []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
		},
		RateLimiter: rateLimiter,
	}, logger)

	var offerCache cache.Cache
	var bookingStore store.BookingStore
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			logger.Fatal("redis connect failed", "err", err)
		}
		offerCache = redisCache
		bookingStore = store.NewRedisStore(redis.NewClient(&redis.Options{
			Addr: cfg.RedisHost + ":" + cfg.RedisPort,
		}))
		logger.Info("redis enabled", "host", cfg.RedisHost, "port", cfg.RedisPort, "ttl", cfg.RedisTTL)
	} else {
		offerCache = cache.NewNoOpCache()
		bookingStore = store.NewMemoryStore()
		logger.Info("redis disabled, using in-memory booking store")
	}

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		publisher = events.NewNoOpPublisher()
	}
	defer publisher.Close()

	searchHandler := handler.NewSearchHandler(client, offerCache, airports.NewStaticLookup(), cfg.PointOfSale, logger)
	bookingHandler := handler.NewBookingHandler(client, bookingStore, publisher, logger)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/flights/filter", searchHandler.Filter)
	api.POST("/flights/display-hints", searchHandler.DisplayHints)
	api.POST("/bookings/sync", bookingHandler.Sync)
	api.GET("/bookings", bookingHandler.List)
	api.GET("/bookings/:ref", bookingHandler.Get)
	e.GET("/health", handler.HealthHandler)

	logger.Info("starting flightdesk server", "port", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		PointOfSale:  getEnv("POINT_OF_SALE", "ID"),
		ShoppingURL:  getEnv("SHOPPING_API_URL", "http://localhost:9090/shopping"),
		OrdersURL:    getEnv("ORDERS_API_URL", "http://localhost:9090/orders"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", true),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisTTL:     getEnvDuration("REDIS_TTL", 5*time.Minute),
		KafkaBrokers: getEnvList("KAFKA_BROKERS", nil),
		KafkaTopic:   getEnv("KAFKA_BOOKING_TOPIC", "booking-events"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
