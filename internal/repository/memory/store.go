package memory

import (
	"context"
	"sync"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
)

// Store keeps the serialized collection in process memory, mirroring the
// single-key layout of the durable backends. Data is lost on restart.
type Store struct {
	mu      sync.RWMutex
	payload []byte
}

var _ domain.TransactionStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithPayload creates a store holding a raw serialized payload
func NewStoreWithPayload(payload []byte) *Store {
	return &Store{payload: payload}
}

// Load decodes the stored payload
func (s *Store) Load(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.DecodeTransactions(s.payload)
}

// Save replaces the stored payload
func (s *Store) Save(ctx context.Context, transactions []domain.Transaction) error {
	payload, err := domain.EncodeTransactions(transactions)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
	return nil
}
