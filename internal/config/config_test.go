package config_test

import (
	"testing"
	"time"

	"homefit/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.True(t, cfg.CSRFEnabled)
	assert.False(t, cfg.WorkoutStampAuthor)
	assert.True(t, cfg.SeedAdmin)
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set("STORE_DRIVER", "mongo")
	v.Set("TOKEN_TTL", "90m")
	v.Set("WORKOUT_STAMP_AUTHOR", true)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.WorkoutStampAuthor)
}

func TestFromViper_Invalid(t *testing.T) {
	v := newViper()
	v.Set("STORE_DRIVER", "redis")
	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")

	v = newViper()
	v.Set("TOKEN_TTL", "forever")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "invalid TOKEN_TTL")

	v = newViper()
	v.Set("JWT_SECRET", "")
	_, err = config.FromViper(v)
	assert.Error(t, err)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("CSRF_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.False(t, cfg.CSRFEnabled)
}
