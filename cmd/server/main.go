package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/config"
	"github.com/iliyamo/cinebook/internal/handler"
	"github.com/iliyamo/cinebook/internal/queue"
	"github.com/iliyamo/cinebook/internal/repository"
	"github.com/iliyamo/cinebook/internal/router"
	queue_publisher "github.com/iliyamo/cinebook/internal/service"
)

func main() {
	if err := run(config.Load()); err != nil {
		log.Fatal(err)
	}
}

// run serves until SIGINT or SIGTERM, then saves a snapshot of the state.
func run(cfg config.Config) error {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// State backend: file, mysql or postgres.
	store, closeStore, err := repository.OpenStateStore(ctx, cfg.State)
	if err != nil {
		return fmt.Errorf("state store: %w", err)
	}
	defer closeStore()

	// Missing or corrupt state starts from the built-in catalog.
	catalog, records, err := repository.LoadOrDefault(ctx, store)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	engine := booking.NewEngine(catalog, records, booking.WithPricePerSeat(cfg.PricePerSeat))
	log.Printf("state: %d movies, %d bookings loaded (backend=%s)", len(catalog.Movies), len(records), cfg.State.Backend)

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	bookings := &handler.BookingHandler{Engine: engine}
	// Booking events: publish on commit, consume into receipts and booking.log.
	if cfg.QueueEnabled {
		bookings.Publisher = queue_publisher.NewPublisher(cfg.AMQPURL)
		go func() {
			err := queue.StartBookingConsumer(ctx, queue.ConsumerConfig{
				URL:        cfg.AMQPURL,
				ReceiptDir: cfg.ReceiptDir,
				LogDir:     cfg.LogDir,
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("booking-consumer: stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())  // access log
	e.Use(echomw.Recover()) // turn handler panics into 500s

	router.Register(e, router.Deps{
		Public:    &handler.PublicHandler{Engine: engine},
		Bookings:  bookings,
		Operator:  &handler.OperatorHandler{Engine: engine, Store: store},
		Auth:      handler.NewAuthHandler(cfg),
		JWTSecret: cfg.JWTSecret,
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
	})

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done() // SIGINT, SIGTERM or a failed listener

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	// No requests are in flight any more; persist the final state.
	snapCatalog, snapBookings := engine.Snapshot()
	if err := store.Save(shutdownCtx, snapCatalog, snapBookings); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	log.Printf("state saved: %d bookings", len(snapBookings))
	return nil
}
