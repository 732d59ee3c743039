package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/websocket"
)

// MockTransactionStore is a mock implementation of domain.TransactionStore
type MockTransactionStore struct {
	Stored    []domain.Transaction
	SaveCalls int
	LoadFn    func(ctx context.Context) ([]domain.Transaction, error)
	SaveFn    func(ctx context.Context, transactions []domain.Transaction) error
	mu        sync.Mutex
}

// NewMockTransactionStore creates a new MockTransactionStore seeded with transactions
func NewMockTransactionStore(transactions ...domain.Transaction) *MockTransactionStore {
	stored := make([]domain.Transaction, len(transactions))
	copy(stored, transactions)
	return &MockTransactionStore{Stored: stored}
}

// Load returns a copy of the stored collection
func (m *MockTransactionStore) Load(ctx context.Context) ([]domain.Transaction, error) {
	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Transaction, len(m.Stored))
	copy(result, m.Stored)
	return result, nil
}

// Save replaces the stored collection
func (m *MockTransactionStore) Save(ctx context.Context, transactions []domain.Transaction) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, transactions)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stored = make([]domain.Transaction, len(transactions))
	copy(m.Stored, transactions)
	return nil
}

// Snapshot returns the last saved collection and the number of Save calls
func (m *MockTransactionStore) Snapshot() ([]domain.Transaction, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Transaction, len(m.Stored))
	copy(result, m.Stored)
	return result, m.SaveCalls
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	Events []websocket.Event
	mu     sync.Mutex
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Types returns the type of every recorded event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, evt := range m.Events {
		types[i] = evt.Type
	}
	return types
}

// MockReportSink is a mock implementation of domain.ReportSink
type MockReportSink struct {
	Label     string
	Blocks    []domain.ReportBlock
	Calls     int
	PublishFn func(ctx context.Context, label string, blocks []domain.ReportBlock) (*domain.ReportArtifact, error)
}

// NewMockReportSink creates a new MockReportSink
func NewMockReportSink() *MockReportSink {
	return &MockReportSink{}
}

// Publish records the blocks and returns an artifact named after the label
func (m *MockReportSink) Publish(ctx context.Context, label string, blocks []domain.ReportBlock) (*domain.ReportArtifact, error) {
	m.Calls++
	m.Label = label
	m.Blocks = blocks
	if m.PublishFn != nil {
		return m.PublishFn(ctx, label, blocks)
	}
	name := fmt.Sprintf("laporan-keuangan-%s.pdf", label)
	return &domain.ReportArtifact{
		Name:        name,
		Location:    "memory://" + name,
		ContentType: "application/pdf",
		Pages:       1,
	}, nil
}

// MockObjectStore keeps uploaded objects in memory
type MockObjectStore struct {
	Objects map[string][]byte
	PutFn   func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	BaseURL string
	mu      sync.Mutex
}

// NewMockObjectStore creates a new MockObjectStore
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Objects: make(map[string][]byte),
		BaseURL: "memory://reports",
	}
}

// Put stores the object body under key
func (m *MockObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, body, size, contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = data
	return nil
}

// Get returns a reader over a stored object
func (m *MockObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// URL returns a pseudo location for key
func (m *MockObjectStore) URL(ctx context.Context, key string) (string, error) {
	return m.BaseURL + "/" + key, nil
}

// Body returns the stored bytes for key as a string
func (m *MockObjectStore) Body(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.Objects[key])
}

// StepClock is a controllable clock for services that stamp ids or labels
type StepClock struct {
	Current time.Time
	Step    time.Duration
	mu      sync.Mutex
}

// NewStepClock creates a clock starting at start that advances by step on every call
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{Current: start, Step: step}
}

// Now returns the current time and advances the clock
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}

// Set moves the clock to t
func (c *StepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Current = t
}

// Advance moves the clock forward by d
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Current = c.Current.Add(d)
}
