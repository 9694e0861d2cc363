package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds the runtime settings of the application.
type Config struct {
	AppPort            string
	StoreDriver        string
	DatabaseDSN        string
	MongoURI           string
	MongoDatabase      string
	JWTSecret          string
	TokenTTL           time.Duration
	RabbitMQURL        string // empty disables event publishing
	CSRFEnabled        bool
	WorkoutStampAuthor bool
	SeedAdmin          bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "homefit.db")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "homefit")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CSRF_ENABLED", true)
	v.SetDefault("WORKOUT_STAMP_AUTHOR", false)
	v.SetDefault("SEED_ADMIN", true)
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not read .env file: %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		AppPort:            v.GetString("APP_PORT"),
		StoreDriver:        v.GetString("STORE_DRIVER"),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),
		MongoURI:           v.GetString("MONGO_URI"),
		MongoDatabase:      v.GetString("MONGO_DATABASE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		TokenTTL:           ttl,
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		CSRFEnabled:        v.GetBool("CSRF_ENABLED"),
		WorkoutStampAuthor: v.GetBool("WORKOUT_STAMP_AUTHOR"),
		SeedAdmin:          v.GetBool("SEED_ADMIN"),
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverMongo:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return cfg, nil
}
