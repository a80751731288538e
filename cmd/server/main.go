package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/booking"
	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/database"
	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/middleware"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/router"
	queue_publisher "github.com/iliyamo/restaurant-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	reservations := repository.NewReservationRepo(db)
	tables := repository.NewTableRepo(db)
	users := repository.NewUserRepo(db)

	sched := booking.NewSchedule(cfg.Location(), cfg.ClosedWeekday(), cfg.OpeningTime, cfg.LastSeating)
	flow := booking.NewWorkflow(db, reservations, tables, sched)

	resHandler := handler.NewReservationHandler(flow, reservations)
	resHandler.Publish = queue_publisher.PublishLifecycle
	tabHandler := handler.NewTableHandler(flow, tables)
	tabHandler.Publish = queue_publisher.PublishLifecycle
	authHandler := handler.NewAuthHandler(cfg, users)

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, authHandler)
	router.RegisterAPI(e, resHandler, tabHandler, authHandler, cfg.JWTSecret, rateMW, cacheMW)

	// Record lifecycle events to the floor activity log in the background.
	go func() {
		if err := queue.StartLifecycleConsumer(); err != nil {
			log.Printf("lifecycle consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, zone=%s)", addr, cfg.Env, cfg.Timezone)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
