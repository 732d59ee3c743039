package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	body := "Ringkasan Bulanan - Juni 2024\n"
	require.NoError(t, store.Put(ctx, "laporan-keuangan-Juni 2024.txt", strings.NewReader(body), int64(len(body)), "text/plain"))

	rc, err := store.Get(ctx, "laporan-keuangan-Juni 2024.txt")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	location, err := store.URL(ctx, "laporan-keuangan-Juni 2024.txt")
	require.NoError(t, err)
	assert.Equal(t, "laporan-keuangan-Juni 2024.txt", filepath.Base(location))
	assert.True(t, filepath.IsAbs(location))
}

func TestLocalStore_Overwrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.txt", strings.NewReader("first"), 5, "text/plain"))
	require.NoError(t, store.Put(ctx, "a.txt", strings.NewReader("second"), 6, "text/plain"))

	rc, err := store.Get(ctx, "a.txt")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "second", string(data))
}

func TestLocalStore_Missing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalStore_RejectsPathKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape.txt", "nested/file.txt"} {
		err := store.Put(context.Background(), key, strings.NewReader("x"), 1, "text/plain")
		assert.Error(t, err, key)
	}
}
