package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overcooked-orders/config"
	"overcooked-orders/logging"
	httpapi "overcooked-orders/order-svc/internal/api/http"
	"overcooked-orders/order-svc/internal/domain"
	"overcooked-orders/order-svc/internal/service"
	"overcooked-orders/order-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type repositories interface {
	service.OrderRepository
	service.RestaurantRepository
	service.FoodItemRepository
}

// buildPolicies turns settings into the pricing and lifecycle rules the
// services apply.
func buildPolicies(s config.Settings) (service.Policies, error) {
	rounding, err := domain.ParseRoundingMode(s.RoundingMode)
	if err != nil {
		return service.Policies{}, err
	}

	rate, err := decimal.NewFromString(s.TaxRate)
	if err != nil {
		return service.Policies{}, fmt.Errorf("invalid TAX_RATE %q: %w", s.TaxRate, err)
	}
	if rate.IsNegative() {
		return service.Policies{}, fmt.Errorf("invalid TAX_RATE %q: must not be negative", s.TaxRate)
	}

	var cancellable []domain.Status
	for _, raw := range s.CancellableStatuses {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return service.Policies{}, fmt.Errorf("invalid CANCELLABLE_STATUSES: %w", err)
		}
		cancellable = append(cancellable, status)
	}

	return service.Policies{
		Checkout: domain.Checkout{
			Tax:           domain.FlatRateTax{Rate: rate},
			DefaultWindow: time.Duration(s.DefaultDeliveryMinutes) * time.Minute,
		},
		StateMachine: domain.NewStateMachine(cancellable),
		Rounding:     rounding,
	}, nil
}

func main() {
	settings := config.Load()
	log := logging.New(settings.LogLevel)
	slog.SetDefault(log)

	if err := run(settings, log); err != nil {
		log.Error("order service exited", "err", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, log *slog.Logger) error {
	policies, err := buildPolicies(settings)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var repos repositories
	switch settings.Storage {
	case "memory":
		log.Warn("using in-memory storage, data is lost on restart")
		repos = storage.NewMemoryStore()
	default:
		db := config.MustInitPostgres(settings)
		defer db.Close()
		repos = storage.NewPostgresRepository(db)
	}

	var cache service.RatingCache
	if settings.RedisHost != "" {
		rdb := config.MustInitRedis(settings)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, settings.RatingMarkerTTL)
	} else {
		log.Warn("REDIS_HOST not set, duplicate ratings are not detected")
	}

	var (
		orderPublisher  service.OrderPublisher
		ratingPublisher service.RatingPublisher
	)
	if settings.KafkaBroker != "" {
		ordersWriter := config.NewKafkaWriter(settings, settings.OrdersTopic)
		defer ordersWriter.Close()
		ratingsWriter := config.NewKafkaWriter(settings, settings.RatingsTopic)
		defer ratingsWriter.Close()

		publisher := storage.NewKafkaPublisher(ordersWriter, ratingsWriter)
		orderPublisher = publisher
		ratingPublisher = publisher
	} else {
		log.Warn("KAFKA_BROKER not set, ratings are applied synchronously")
	}

	orders := service.NewOrderService(repos, repos, repos, orderPublisher,
		service.DefaultQRGenerator{BaseURL: settings.TrackingBaseURL}, policies, log)
	ratings := service.NewRatingService(repos, repos, cache, ratingPublisher,
		domain.RatingAggregator{Rounding: policies.Rounding}, settings.RatingMaxAttempts, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumerDone := make(chan struct{})
	if settings.KafkaBroker != "" {
		reader := config.NewKafkaReader(settings, settings.RatingsTopic, settings.ConsumerGroup)
		defer reader.Close()
		go func() {
			defer close(consumerDone)
			service.NewConsumer(reader, ratings, log).Start(ctx)
		}()
	} else {
		close(consumerDone)
	}

	handler := httpapi.NewHandler(orders, ratings, policies.Rounding)
	srv, serveErr := httpapi.StartServer(settings.HTTPAddr, httpapi.NewRouter(handler, log), log)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down order service")
	case err := <-serveErr:
		runErr = fmt.Errorf("serve %s: %w", settings.HTTPAddr, err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	<-consumerDone

	log.Info("order service stopped")
	return runErr
}
