package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/metrics"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledgerStart = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T, seed ...domain.Transaction) (*Ledger, *testutil.MockTransactionStore, *testutil.MockEventPublisher) {
	t.Helper()
	store := testutil.NewMockTransactionStore(seed...)
	publisher := testutil.NewMockEventPublisher()

	ledger := NewLedger(store)
	ledger.SetEventPublisher(publisher)
	ledger.SetClock(testutil.NewStepClock(ledgerStart, time.Second).Now)
	require.NoError(t, ledger.Load(context.Background()))
	return ledger, store, publisher
}

func TestLedger_Load(t *testing.T) {
	ledger, _, _ := newTestLedger(t,
		domain.Transaction{ID: 10, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 500},
		domain.Transaction{ID: 20, Date: "2024-06-02", Type: domain.TransactionTypeOutcome, Amount: 100},
	)

	assert.Equal(t, 2, ledger.Len())
	assert.Equal(t, int64(400), ledger.Balance())
}

func TestLedger_Load_CorruptStoreYieldsEmptyLedger(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.LoadFn = func(ctx context.Context) ([]domain.Transaction, error) {
		return nil, domain.ErrCorruptStore
	}
	ledger := NewLedger(store)

	err := ledger.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_Load_StoreError(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	store.LoadFn = func(ctx context.Context) ([]domain.Transaction, error) {
		return nil, errors.New("connection refused")
	}
	ledger := NewLedger(store)

	err := ledger.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLedger_Add_ScenarioA(t *testing.T) {
	ledger, store, publisher := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.Add(ctx, AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "1.000.000", Description: "Gaji"})
	require.NoError(t, err)
	_, err = ledger.Add(ctx, AddInput{Date: "2024-06-03", Type: domain.TransactionTypeOutcome, Amount: "250000", Description: "Belanja"})
	require.NoError(t, err)
	_, err = ledger.Add(ctx, AddInput{Date: "2024-06-04", Type: domain.TransactionTypeSavings, Amount: "100.000"})
	require.NoError(t, err)

	totals := ledger.Totals()
	assert.Equal(t, domain.Totals{Income: 1000000, Outcome: 250000, Savings: 100000}, totals)
	assert.Equal(t, int64(650000), ledger.Balance())

	saved, saveCalls := store.Snapshot()
	assert.Equal(t, 3, saveCalls)
	assert.Len(t, saved, 3)
	assert.Equal(t, []string{"transaction.created", "transaction.created", "transaction.created"}, publisher.Types())
}

func TestLedger_Add_AssignsIncreasingIDs(t *testing.T) {
	store := testutil.NewMockTransactionStore()
	ledger := NewLedger(store)
	// Clock that never advances
	ledger.SetClock(func() time.Time { return ledgerStart })

	first, err := ledger.Add(context.Background(), AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "1"})
	require.NoError(t, err)
	second, err := ledger.Add(context.Background(), AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "1"})
	require.NoError(t, err)

	assert.Equal(t, ledgerStart.UnixMilli(), first.ID)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestLedger_Add_IDsNeverReuseLoadedIDs(t *testing.T) {
	future := ledgerStart.Add(time.Hour).UnixMilli()
	ledger, _, _ := newTestLedger(t,
		domain.Transaction{ID: future, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 1},
	)

	tx, err := ledger.Add(context.Background(), AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "1"})

	require.NoError(t, err)
	assert.Equal(t, future+1, tx.ID)
}

func TestLedger_Add_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     AddInput
		wantField string
	}{
		{"empty date", AddInput{Date: "", Type: domain.TransactionTypeIncome, Amount: "100"}, "date"},
		{"unparseable date", AddInput{Date: "2024-13-45", Type: domain.TransactionTypeIncome, Amount: "100"}, "date"},
		{"unknown type", AddInput{Date: "2024-06-03", Type: "transfer", Amount: "100"}, "type"},
		{"empty amount", AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: ""}, "amount"},
		{"garbage amount", AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "seratus"}, "amount"},
		{"negative amount", AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "-100"}, "amount"},
		{"amount beyond int64", AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "18446744073709551615"}, "amount"},
		{"exponent amount", AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "1e30"}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, store, publisher := newTestLedger(t)

			_, err := ledger.Add(context.Background(), tt.input)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, 0, ledger.Len())
			_, saveCalls := store.Snapshot()
			assert.Equal(t, 0, saveCalls)
			assert.Empty(t, publisher.Events)
		})
	}
}

func TestLedger_Add_RejectsTotalBeyondRange(t *testing.T) {
	ledger, store, _ := newTestLedger(t)

	_, err := ledger.Add(context.Background(), AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "9223372036854775807"})
	require.NoError(t, err)

	_, err = ledger.Add(context.Background(), AddInput{Date: "2024-06-04", Type: domain.TransactionTypeOutcome, Amount: "1"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, int64(math.MaxInt64), ledger.Totals().Income)
	_, saveCalls := store.Snapshot()
	assert.Equal(t, 1, saveCalls)
}

func TestLedger_Add_SaveFailureKeepsChange(t *testing.T) {
	ledger, store, _ := newTestLedger(t)
	m := metrics.New()
	ledger.SetMetrics(m)
	store.SaveFn = func(ctx context.Context, transactions []domain.Transaction) error {
		return errors.New("disk full")
	}

	tx, err := ledger.Add(context.Background(), AddInput{Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: "100"})

	require.NoError(t, err)
	assert.Equal(t, 1, ledger.Len())
	got, err := ledger.Get(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Amount)
}

func TestLedger_Edit_PreservesIdentity(t *testing.T) {
	ledger, store, publisher := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 500, Description: "a"},
		domain.Transaction{ID: 2, Date: "2024-06-02", Type: domain.TransactionTypeOutcome, Amount: 100, Description: "b"},
	)

	err := ledger.Edit(context.Background(), domain.Transaction{ID: 1, Date: "2024-06-05", Type: domain.TransactionTypeSavings, Amount: 700, Description: "edited"})
	require.NoError(t, err)

	all := ledger.Transactions()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "2024-06-05", all[0].Date)
	assert.Equal(t, domain.TransactionTypeSavings, all[0].Type)
	assert.Equal(t, int64(700), all[0].Amount)
	assert.Equal(t, "edited", all[0].Description)
	// Other record untouched
	assert.Equal(t, "b", all[1].Description)

	saved, _ := store.Snapshot()
	assert.Equal(t, all, saved)
	assert.Equal(t, []string{"transaction.updated"}, publisher.Types())
}

func TestLedger_Edit_RejectsTotalBeyondRange(t *testing.T) {
	ledger, _, _ := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: math.MaxInt64 - 100},
		domain.Transaction{ID: 2, Date: "2024-06-04", Type: domain.TransactionTypeOutcome, Amount: 50},
	)

	// replacing 50 with 100 uses the remaining headroom exactly
	require.NoError(t, ledger.Edit(context.Background(), domain.Transaction{ID: 2, Date: "2024-06-04", Type: domain.TransactionTypeOutcome, Amount: 100}))

	err := ledger.Edit(context.Background(), domain.Transaction{ID: 2, Date: "2024-06-04", Type: domain.TransactionTypeOutcome, Amount: 101})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, _ := ledger.Get(2)
	assert.Equal(t, int64(100), got.Amount)
}

func TestLedger_Edit_NotFound(t *testing.T) {
	ledger, store, _ := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 500},
	)

	err := ledger.Edit(context.Background(), domain.Transaction{ID: 99, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 1})

	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, saveCalls := store.Snapshot()
	assert.Equal(t, 0, saveCalls)
}

func TestLedger_Edit_InvalidRecord(t *testing.T) {
	ledger, _, _ := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 500},
	)

	err := ledger.Edit(context.Background(), domain.Transaction{ID: 1, Date: "bad", Type: domain.TransactionTypeIncome, Amount: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, _ := ledger.Get(1)
	assert.Equal(t, "2024-06-01", got.Date)
}

func TestLedger_Delete_Idempotent(t *testing.T) {
	ledger, store, publisher := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 500},
		domain.Transaction{ID: 2, Date: "2024-06-02", Type: domain.TransactionTypeOutcome, Amount: 100},
	)
	ctx := context.Background()

	require.NoError(t, ledger.Delete(ctx, 1))
	afterFirst := ledger.Transactions()
	require.NoError(t, ledger.Delete(ctx, 1))

	assert.Equal(t, afterFirst, ledger.Transactions())
	assert.Equal(t, 1, ledger.Len())
	_, saveCalls := store.Snapshot()
	assert.Equal(t, 1, saveCalls)
	assert.Equal(t, []string{"transaction.deleted"}, publisher.Types())
}

func TestLedger_DeleteByMonthPrefix_ScenarioD(t *testing.T) {
	ledger, store, publisher := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-05-31", Type: domain.TransactionTypeIncome, Amount: 100},
		domain.Transaction{ID: 2, Date: "2024-06-01", Type: domain.TransactionTypeOutcome, Amount: 50},
		domain.Transaction{ID: 3, Date: "2024-06-30", Type: domain.TransactionTypeSavings, Amount: 20},
	)

	removed, err := ledger.DeleteByMonthPrefix(context.Background(), "2024-06")

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	remaining := ledger.Transactions()
	require.Len(t, remaining, 1)
	assert.Equal(t, "2024-05-31", remaining[0].Date)

	saved, _ := store.Snapshot()
	assert.Equal(t, remaining, saved)
	assert.Equal(t, []string{"ledger.month_cleared"}, publisher.Types())
	assert.Equal(t, MonthCleared{MonthPrefix: "2024-06", Removed: 2}, publisher.Events[0].Payload)
}

func TestLedger_DeleteByMonthPrefix_NoMatchIsNoOp(t *testing.T) {
	ledger, store, publisher := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-05-31", Type: domain.TransactionTypeIncome, Amount: 100},
	)

	removed, err := ledger.DeleteByMonthPrefix(context.Background(), "2024-06")

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, ledger.Len())
	_, saveCalls := store.Snapshot()
	assert.Equal(t, 0, saveCalls)
	assert.Empty(t, publisher.Events)
}

func TestLedger_DeleteByMonthPrefix_InvalidPrefix(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	_, err := ledger.DeleteByMonthPrefix(context.Background(), "June")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_TransactionsReturnsCopy(t *testing.T) {
	ledger, _, _ := newTestLedger(t,
		domain.Transaction{ID: 1, Date: "2024-06-01", Type: domain.TransactionTypeIncome, Amount: 100},
	)

	snapshot := ledger.Transactions()
	snapshot[0].Amount = 999

	got, err := ledger.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Amount)
}

func TestLedger_ScenarioC_WeekBuckets(t *testing.T) {
	ledger, _, _ := newTestLedger(t)
	ctx := context.Background()

	for _, date := range []string{"2024-06-03", "2024-06-08", "2024-06-09"} {
		_, err := ledger.Add(ctx, AddInput{Date: date, Type: domain.TransactionTypeOutcome, Amount: "10.000"})
		require.NoError(t, err)
	}

	buckets := ledger.WeeklyBuckets()
	require.Len(t, buckets, 2)
	assert.Equal(t, int64(20000), buckets["2024-06-02"].Outcome)
	assert.Equal(t, int64(10000), buckets["2024-06-09"].Outcome)

	groups := ledger.GroupByDate()
	assert.Len(t, groups, 3)
}
