package config

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("BOUNDARY_FILE", "testdata/sectors.geojson")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorageRedis, cfg.StorageBackend)
	assert.Equal(t, DefaultSnapshotKey, cfg.SnapshotKey)
	assert.Equal(t, DefaultPersistTimeout, cfg.PersistTimeout)
	assert.Equal(t, "Sector", cfg.BoundarySectorProperty)
	assert.Equal(t, "Provider", cfg.BoundaryProviderProperty)
	assert.False(t, cfg.BoundaryPermissive)
	assert.Equal(t, DefaultLatitude, cfg.DefaultLatitude)
	assert.Equal(t, DefaultLongitude, cfg.DefaultLongitude)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("BOUNDARY_FILE", "/data/wards.geojson")
	t.Setenv("BOUNDARY_SECTOR_PROPERTY", "ward")
	t.Setenv("BOUNDARY_PERMISSIVE", "true")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/n.db")
	t.Setenv("PERSIST_TIMEOUT", "250ms")
	t.Setenv("DEFAULT_LATITUDE", "12.5")
	t.Setenv("DEFAULT_LONGITUDE", "-70.25")
	t.Setenv("API_KEYS", " key1 , key2")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "ward", cfg.BoundarySectorProperty)
	assert.True(t, cfg.BoundaryPermissive)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/n.db", cfg.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.PersistTimeout)
	assert.Equal(t, 12.5, cfg.DefaultLatitude)
	assert.Equal(t, -70.25, cfg.DefaultLongitude)
	assert.Equal(t, []string{"key1", "key2"}, cfg.APIKeys)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			BoundaryFile:     "sectors.geojson",
			StorageBackend:   StorageRedis,
			PersistTimeout:   time.Second,
			DefaultLatitude:  DefaultLatitude,
			DefaultLongitude: DefaultLongitude,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing boundary file", func(c *Config) { c.BoundaryFile = "" }, "BOUNDARY_FILE"},
		{"unknown backend", func(c *Config) { c.StorageBackend = "etcd" }, "unknown STORAGE_BACKEND"},
		{"postgres without url", func(c *Config) { c.StorageBackend = StoragePostgres }, "DATABASE_URL"},
		{"postgres with url", func(c *Config) {
			c.StorageBackend = StoragePostgres
			c.DatabaseURL = "postgres://localhost/db"
		}, ""},
		{"latitude out of range", func(c *Config) { c.DefaultLatitude = 91 }, "out of range"},
		{"longitude out of range", func(c *Config) { c.DefaultLongitude = -181 }, "out of range"},
		{"latitude not a number", func(c *Config) { c.DefaultLatitude = math.NaN() }, "out of range"},
		{"longitude not a number", func(c *Config) { c.DefaultLongitude = math.NaN() }, "out of range"},
		{"zero timeout", func(c *Config) { c.PersistTimeout = 0 }, "PERSIST_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_RejectsNaNDefaultLocation(t *testing.T) {
	t.Setenv("BOUNDARY_FILE", "sectors.geojson")
	t.Setenv("DEFAULT_LATITUDE", "NaN")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
