package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/metrics"
	"github.com/dafibh/dompet/dompet-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// Ledger owns the in-memory transaction collection.
// All access is serialized; every mutation is written through to the store
// before the lock is released.
type Ledger struct {
	mu           sync.Mutex
	store        domain.TransactionStore
	transactions []domain.Transaction
	lastID       int64
	now          func() time.Time

	eventPublisher websocket.EventPublisher
	metrics        *metrics.Metrics
}

// NewLedger creates an empty Ledger backed by store
func NewLedger(store domain.TransactionStore) *Ledger {
	return &Ledger{
		store:        store,
		transactions: []domain.Transaction{},
		now:          time.Now,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (l *Ledger) SetEventPublisher(publisher websocket.EventPublisher) {
	l.eventPublisher = publisher
}

// SetMetrics sets the collectors mutations are recorded on
func (l *Ledger) SetMetrics(m *metrics.Metrics) {
	l.metrics = m
}

// SetClock replaces the clock used to derive transaction ids
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// AddInput holds the raw values of a new transaction as entered by the user
type AddInput struct {
	Date        string
	Type        domain.TransactionType
	Amount      string
	Description string
}

// Load hydrates the ledger from the store. A corrupt payload leaves the
// ledger empty; any other store error is returned.
func (l *Ledger) Load(ctx context.Context) error {
	transactions, err := l.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptStore) {
			return fmt.Errorf("load transactions: %w", err)
		}
		log.Warn().Err(err).Msg("Stored transactions are unreadable, starting with an empty ledger")
		transactions = []domain.Transaction{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = transactions
	l.lastID = 0
	for _, tx := range transactions {
		if tx.ID > l.lastID {
			l.lastID = tx.ID
		}
	}
	l.metrics.LedgerSize(len(l.transactions))

	log.Info().Int("count", len(transactions)).Msg("Ledger loaded")
	return nil
}

var errTotalOutOfRange = domain.NewValidationError("amount", "Ledger total would exceed the supported range")

// Add validates the input, assigns a fresh id and appends the transaction
func (l *Ledger) Add(ctx context.Context, input AddInput) (domain.Transaction, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		return domain.Transaction{}, domain.NewValidationError("date", "Date is required")
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Transaction{}, domain.NewValidationError("date", "Must be in YYYY-MM-DD format")
	}
	if !input.Type.IsValid() {
		return domain.Transaction{}, domain.NewValidationError("type", "Must be one of income, outcome, savings")
	}
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if amount > domain.CalculateTotals(l.transactions).Headroom() {
		return domain.Transaction{}, errTotalOutOfRange
	}

	tx := domain.Transaction{
		ID:          l.nextID(),
		Date:        date,
		Type:        input.Type,
		Amount:      amount,
		Description: strings.TrimSpace(input.Description),
	}
	l.transactions = append(l.transactions, tx)

	l.persist(ctx, "add")
	l.publishEvent(websocket.TransactionCreated(tx))

	log.Info().
		Int64("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("date", tx.Date).
		Msg("Transaction added")
	return tx, nil
}

// Edit replaces the transaction carrying the same id
func (l *Ledger) Edit(ctx context.Context, updated domain.Transaction) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(updated.ID)
	if idx < 0 {
		return domain.ErrTransactionNotFound
	}
	if updated.Amount > domain.CalculateTotals(l.transactions).Headroom()+l.transactions[idx].Amount {
		return errTotalOutOfRange
	}
	l.transactions[idx] = updated

	l.persist(ctx, "edit")
	l.publishEvent(websocket.TransactionUpdated(updated))

	log.Info().Int64("transaction_id", updated.ID).Msg("Transaction updated")
	return nil
}

// Delete removes the transaction with id. An unknown id is a no-op.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		log.Debug().Int64("transaction_id", id).Msg("Delete skipped, transaction not present")
		return nil
	}
	removed := l.transactions[idx]
	l.transactions = append(l.transactions[:idx:idx], l.transactions[idx+1:]...)

	l.persist(ctx, "delete")
	l.publishEvent(websocket.TransactionDeleted(removed))

	log.Info().Int64("transaction_id", id).Msg("Transaction deleted")
	return nil
}

// MonthCleared is the payload of a ledger.month_cleared event
type MonthCleared struct {
	MonthPrefix string `json:"monthPrefix"`
	Removed     int    `json:"removed"`
}

// DeleteByMonthPrefix removes every transaction dated inside the YYYY-MM month
// and returns how many were removed
func (l *Ledger) DeleteByMonthPrefix(ctx context.Context, prefix string) (int, error) {
	if !domain.ValidMonthPrefix(prefix) {
		return 0, domain.NewValidationError("month", "Must be in YYYY-MM format")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := make([]domain.Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if !strings.HasPrefix(tx.Date, prefix) {
			kept = append(kept, tx)
		}
	}
	removed := len(l.transactions) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	l.transactions = kept

	l.persist(ctx, "delete_month")
	l.publishEvent(websocket.MonthCleared(MonthCleared{MonthPrefix: prefix, Removed: removed}))

	log.Info().
		Str("month_prefix", prefix).
		Int("removed", removed).
		Msg("Month cleared")
	return removed, nil
}

// Get returns a copy of the transaction with id
func (l *Ledger) Get(id int64) (domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return l.transactions[idx], nil
}

// Transactions returns a copy of the collection in ledger order
func (l *Ledger) Transactions() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Len returns the number of transactions held
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

// Totals returns the per-type sums over the whole ledger
func (l *Ledger) Totals() domain.Totals {
	return domain.CalculateTotals(l.Transactions())
}

// Balance returns income - outcome - savings over the whole ledger
func (l *Ledger) Balance() int64 {
	return domain.CalculateBalance(l.Transactions())
}

// GroupByDate returns the ledger grouped by transaction date
func (l *Ledger) GroupByDate() map[string][]domain.Transaction {
	return domain.GroupByDate(l.Transactions())
}

// WeeklyBuckets returns per-week totals keyed by week start
func (l *Ledger) WeeklyBuckets() map[string]domain.Totals {
	return domain.WeeklyBuckets(l.Transactions())
}

// nextID derives an id from the clock, never repeating or going backwards.
// Callers must hold l.mu.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) indexOf(id int64) int {
	for i, tx := range l.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) snapshot() []domain.Transaction {
	result := make([]domain.Transaction, len(l.transactions))
	copy(result, l.transactions)
	return result
}

// persist writes the full collection through to the store. A failed save is
// logged and counted; the in-memory change stands. Callers must hold l.mu.
func (l *Ledger) persist(ctx context.Context, operation string) {
	l.metrics.LedgerMutation(operation, len(l.transactions))

	if err := l.store.Save(ctx, l.snapshot()); err != nil {
		l.metrics.PersistFailure()
		log.Error().
			Err(err).
			Str("operation", operation).
			Int("count", len(l.transactions)).
			Msg("Failed to persist transactions")
	}
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (l *Ledger) publishEvent(event websocket.Event) {
	if l.eventPublisher != nil {
		l.eventPublisher.Publish(event)
	}
}
