package db_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_tracker/pkg/db"
	"homework_tracker/pkg/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := db.Config{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://u:p@db:5432/hw?sslmode=disable"
	assert.Equal(t, cfg.URL, cfg.DSN())
}

func TestPostgres(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		url := os.Getenv("TEST_DATABASE_URL")
		if url == "" {
			t.Skip("TEST_DATABASE_URL is not set")
		}

		pg, err := db.NewPostgres(context.Background(), db.Config{
			URL:            url,
			MigrationsPath: "../../migrations",
		}, logger.NewNop())
		require.NoError(t, err)
		require.NotNil(t, pg)
		require.NotNil(t, pg.DB())

		err = pg.Close()
		require.NoError(t, err)
	})

	t.Run("connection error", func(t *testing.T) {
		cfg := db.Config{
			Host:     "127.0.0.1",
			Port:     1,
			User:     "user",
			Password: "pass",
			DBName:   "db",
			SSLMode:  "disable",
		}

		_, err := db.NewPostgres(context.Background(), cfg, logger.NewNop())
		require.Error(t, err)
	})
}
