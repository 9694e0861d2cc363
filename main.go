package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"

	"homefit/internal/config"
	"homefit/internal/models"
	"homefit/internal/repositories"
	"homefit/internal/server"
	"homefit/internal/services"
	"homefit/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// --- Store ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()
	log.Printf("Using %s store", cfg.StoreDriver)

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, record events are disabled")
	}

	// --- Services ---
	authService := services.NewAuthService(store.Users, cfg.JWTSecret, cfg.TokenTTL)
	bedService := services.NewBedService(store.Beds, events)
	workoutService := services.NewWorkoutService(store.Workouts, events, workoutPolicy(cfg))

	if cfg.SeedAdmin {
		if err := authService.EnsureAdmin(ctx); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	}

	// --- Fiber App ---
	app := server.New(server.Deps{
		Auth:          authService,
		Beds:          bedService,
		Workouts:      workoutService,
		CSRFEnabled:   cfg.CSRFEnabled,
		EventsEnabled: mqClient != nil,
	})

	// --- RabbitMQ Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for record events...")
		if err := mqClient.ConsumeRecordEvents(logRecordEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openStore opens the backend selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (*repositories.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return repositories.NewMemDBStore()
	case config.DriverSQLite, config.DriverPostgres:
		db, err := repositories.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return repositories.NewGORMStore(db)
	case config.DriverMongo:
		return repositories.OpenMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func workoutPolicy(cfg *config.Config) services.OwnershipPolicy {
	policy := services.WorkoutPolicy
	policy.StampAuthor = cfg.WorkoutStampAuthor
	return policy
}

// logRecordEvent is the consumer for record_events.
func logRecordEvent(msg amqp.Delivery) error {
	var ev models.RecordEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		return fmt.Errorf("decode record event: %w", err)
	}
	log.Printf("Record event (Tag: %d): %s %s by %q at %s",
		msg.DeliveryTag, ev.RoutingKey(), ev.RecordID, ev.UserID, ev.At.Format(time.RFC3339))
	return nil
}
