package sqldb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "inventory-service/internal/inventory/repository"
	"inventory-service/pkg/database"
	"inventory-service/pkg/log"
)

func newSQLiteRepo(t *testing.T) (repo.Repository, *sql.DB) {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db, SQLite))
	return New(db, SQLite, log.NewNop()), db
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	_, db := newSQLiteRepo(t)
	assert.NoError(t, EnsureSchema(context.Background(), db, SQLite))
}

func TestSQLiteCreateAndGet(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Drill", Description: "cordless"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Drill", created.Name)
	assert.Equal(t, "cordless", created.Description)
	assert.Empty(t, created.Photo)

	got, err := r.GetOneItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := r.GetOneItem(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestSQLiteIDsNeverReused(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	a, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "a"})
	require.NoError(t, err)
	require.NoError(t, r.DeleteItem(ctx, a.ID))

	b, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "b"})
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}

func TestSQLiteListOrdered(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()

	items, err := r.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	for _, name := range []string{"c", "a", "b"} {
		_, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: name, Photo: name + ".jpg"})
		require.NoError(t, err)
	}

	items, err = r.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, int64(i+1), it.ID)
	}
	assert.Equal(t, "c.jpg", items[0].Photo)
}

func TestSQLiteUpdateItemFields(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()
	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Drill", Description: "cordless", Photo: "p.jpg"})
	require.NoError(t, err)

	item, err := r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: created.ID, Description: "cordless, 18V"})
	require.NoError(t, err)
	assert.Equal(t, "Drill", item.Name)
	assert.Equal(t, "cordless, 18V", item.Description)
	assert.Equal(t, "p.jpg", item.Photo)

	item, err = r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: created.ID, Name: "Hammer drill"})
	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", item.Name)
	assert.Equal(t, "cordless, 18V", item.Description)

	_, err = r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: created.ID})
	assert.ErrorIs(t, err, repo.ErrNoFieldsProvided)

	_, err = r.UpdateItemFields(ctx, repo.UpdateItemFieldsOptions{ID: 77, Name: "x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSQLiteUpdateItemPhoto(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()
	created, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "Drill"})
	require.NoError(t, err)

	item, err := r.UpdateItemPhoto(ctx, repo.UpdateItemPhotoOptions{ID: created.ID, Photo: "new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", item.Photo)

	_, err = r.UpdateItemPhoto(ctx, repo.UpdateItemPhotoOptions{ID: 5, Photo: "x.jpg"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSQLiteDeleteItem(t *testing.T) {
	r, _ := newSQLiteRepo(t)
	ctx := context.Background()
	a, _ := r.CreateItem(ctx, repo.CreateItemOptions{Name: "a"})
	b, _ := r.CreateItem(ctx, repo.CreateItemOptions{Name: "b"})

	require.NoError(t, r.DeleteItem(ctx, a.ID))
	assert.ErrorIs(t, r.DeleteItem(ctx, a.ID), repo.ErrNotFound)

	items, err := r.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

func TestBuildUpdateFieldsQuery(t *testing.T) {
	r := &implRepository{dialect: Postgres}

	query, args := r.buildUpdateFieldsQuery(repo.UpdateItemFieldsOptions{ID: 3, Name: "n", Description: "d"})
	assert.Equal(t, "UPDATE inventory_items SET name = $1, description = $2 WHERE id = $3 RETURNING id, name, description, photo", query)
	assert.Equal(t, []any{"n", "d", int64(3)}, args)

	query, args = r.buildUpdateFieldsQuery(repo.UpdateItemFieldsOptions{ID: 4, Description: "d"})
	assert.Equal(t, "UPDATE inventory_items SET description = $1 WHERE id = $2 RETURNING id, name, description, photo", query)
	assert.Equal(t, []any{"d", int64(4)}, args)
}

func TestDialectByName(t *testing.T) {
	d, ok := DialectByName("postgres")
	assert.True(t, ok)
	assert.Equal(t, "postgres", d.Name)

	_, ok = DialectByName("memory")
	assert.False(t, ok)
}
