package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("MONGO_URI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "oxide", cfg.MongoDatabase)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
}

func TestLoadConfigProductionRequiresMongoURI(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MONGO_URI", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "oxide_test")
	t.Setenv("PORT", "4000")
	t.Setenv("STORE_TIMEOUT_SECONDS", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "oxide_test", cfg.MongoDatabase)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("MONGO_URI", "")

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("STORE_TIMEOUT_SECONDS", "zero")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("STORE_TIMEOUT_SECONDS", "5")
		t.Setenv("PORT", "not-a-port")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
