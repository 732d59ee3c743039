package report

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// ContentType of rendered report documents
const ContentType = "application/pdf"

// DefaultPrefix is the fixed filename prefix of exported reports
const DefaultPrefix = "laporan-keuangan"

// ObjectStore persists rendered documents
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	URL(ctx context.Context, key string) (string, error)
}

// DocumentSink renders report blocks and stores the document as
// <prefix>-<label>.pdf
type DocumentSink struct {
	store    ObjectStore
	renderer *PDFRenderer
	prefix   string
}

// NewDocumentSink creates a new DocumentSink
func NewDocumentSink(store ObjectStore, renderer *PDFRenderer, prefix string) *DocumentSink {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &DocumentSink{store: store, renderer: renderer, prefix: prefix}
}

// FileName returns the document name for a report label
func (s *DocumentSink) FileName(label string) string {
	return fmt.Sprintf("%s-%s.pdf", s.prefix, label)
}

// Publish implements domain.ReportSink
func (s *DocumentSink) Publish(ctx context.Context, label string, blocks []domain.ReportBlock) (*domain.ReportArtifact, error) {
	name := s.FileName(label)
	doc, err := s.renderer.Render(blocks)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	if err := s.store.Put(ctx, name, bytes.NewReader(doc.Body), int64(len(doc.Body)), ContentType); err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}

	location, err := s.store.URL(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", name, err)
	}

	log.Info().
		Str("name", name).
		Int("pages", doc.Pages).
		Int("bytes", len(doc.Body)).
		Msg("Report document stored")

	return &domain.ReportArtifact{
		Name:        name,
		Location:    location,
		ContentType: ContentType,
		Pages:       doc.Pages,
		Size:        int64(len(doc.Body)),
	}, nil
}

// Open returns the stored document for label
func (s *DocumentSink) Open(ctx context.Context, label string) (io.ReadCloser, error) {
	return s.store.Get(ctx, s.FileName(label))
}
