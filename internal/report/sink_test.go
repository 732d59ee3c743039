package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSink_Publish(t *testing.T) {
	store := testutil.NewMockObjectStore()
	sink := NewDocumentSink(store, NewPDFRenderer(NewFormatter(), 20), "")

	artifact, err := sink.Publish(context.Background(), "Juni 2024", []domain.ReportBlock{
		{Kind: domain.BlockKindText, Section: domain.SectionEmpty, Text: "Tidak ada transaksi untuk dicetak."},
	})

	require.NoError(t, err)
	assert.Equal(t, "laporan-keuangan-Juni 2024.pdf", artifact.Name)
	assert.Equal(t, "memory://reports/laporan-keuangan-Juni 2024.pdf", artifact.Location)
	assert.Equal(t, ContentType, artifact.ContentType)
	assert.Equal(t, 1, artifact.Pages)
	assert.Equal(t, int64(len(store.Body(artifact.Name))), artifact.Size)
	assert.True(t, strings.HasPrefix(store.Body(artifact.Name), "%PDF-"))

	rc, err := sink.Open(context.Background(), "Juni 2024")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, store.Body(artifact.Name), string(data))
	assert.Contains(t, string(data), "%%EOF")
}

func TestDocumentSink_CustomPrefix(t *testing.T) {
	sink := NewDocumentSink(testutil.NewMockObjectStore(), NewPDFRenderer(NewFormatter(), 20), "laporan")

	assert.Equal(t, "laporan-Juli 2024.pdf", sink.FileName("Juli 2024"))
}

func TestDocumentSink_StoreError(t *testing.T) {
	store := testutil.NewMockObjectStore()
	store.PutFn = func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
		return errors.New("disk full")
	}
	sink := NewDocumentSink(store, NewPDFRenderer(NewFormatter(), 20), "")

	artifact, err := sink.Publish(context.Background(), "Juni 2024", nil)

	require.Error(t, err)
	assert.Nil(t, artifact)
	assert.Contains(t, err.Error(), "disk full")
}
