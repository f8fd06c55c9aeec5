package sqldb

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "inventory-service/internal/inventory/repository"
	"inventory-service/pkg/database"
	"inventory-service/pkg/log"
)

// setupPostgres connects to the database described by POSTGRES_* variables.
// It skips the test if the connection cannot be established.
func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()

	port, _ := strconv.Atoi(getenv("POSTGRES_PORT", "5432"))
	cfg := database.PostgresConfig{
		Host:            getenv("POSTGRES_HOST", "localhost"),
		Port:            port,
		User:            getenv("POSTGRES_USER", "postgres"),
		Password:        getenv("POSTGRES_PASSWORD", "postgres"),
		Database:        getenv("POSTGRES_DATABASE", "inventory_test"),
		ConnectAttempts: 1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	db, err := database.OpenPostgres(ctx, cfg, log.NewNop())
	if err != nil {
		t.Skipf("skipping postgres tests: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db, Postgres))
	_, err = db.Exec(`TRUNCATE inventory_items RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPostgresRoundTrip(t *testing.T) {
	db := setupPostgres(t)
	r := New(db, Postgres, log.NewNop())
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Drill", Description: "cordless"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: created.ID, Description: "cordless, 18V"})
	require.NoError(t, err)
	assert.Equal(t, "Drill", updated.Name)

	_, err = r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: created.ID})
	assert.ErrorIs(t, err, repo.ErrNoFieldsProvided)

	require.NoError(t, r.DeleteItem(ctx, created.ID))
	assert.ErrorIs(t, r.DeleteItem(ctx, created.ID), repo.ErrNotFound)
}
