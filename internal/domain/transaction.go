package domain

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
	TransactionTypeSavings TransactionType = "savings"
)

// DateLayout is the calendar date format used for transaction dates and week keys
const DateLayout = "2006-01-02"

// MonthPrefixLayout is the YYYY-MM prefix shared by every date of a month
const MonthPrefixLayout = "2006-01"

// DefaultStorageKey is the fixed key the whole collection is persisted under
const DefaultStorageKey = "transactions"

// Transaction is a single dated income, outcome or savings entry.
// Amount is in the smallest currency unit and is never negative.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
}

// IsValid reports whether t is one of the three fixed transaction types
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeOutcome, TransactionTypeSavings:
		return true
	default:
		return false
	}
}

// Label returns the Indonesian display label used on screen and in reports
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeIncome:
		return "Pemasukan"
	case TransactionTypeOutcome:
		return "Pengeluaran"
	default:
		return "Tabungan"
	}
}

// TransactionTypes returns the closed set of types in display order
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeIncome, TransactionTypeOutcome, TransactionTypeSavings}
}

// ParsedDate parses the transaction date as midnight UTC
func (t Transaction) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// Validate checks a fully formed record, as received by Edit
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Date) == "" {
		return NewValidationError("date", "Date is required")
	}
	if _, err := t.ParsedDate(); err != nil {
		return NewValidationError("date", "Must be in YYYY-MM-DD format")
	}
	if !t.Type.IsValid() {
		return NewValidationError("type", "Must be one of income, outcome, savings")
	}
	if t.Amount < 0 {
		return NewValidationError("amount", "Must not be negative")
	}
	return nil
}

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts user input such as "1.000.000" or "250000" into an
// integer amount. Dots are thousand separators; any fraction is floored.
func ParseAmount(raw string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ".", "")
	if cleaned == "" {
		return 0, NewValidationError("amount", "Amount is required")
	}
	if strings.ContainsAny(cleaned, "eE") {
		return 0, NewValidationError("amount", "Must be a valid number")
	}
	// A decimal comma is the only fractional separator left after stripping dots
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, NewValidationError("amount", "Must be a valid number")
	}
	if amount.IsNegative() {
		return 0, NewValidationError("amount", "Must not be negative")
	}
	amount = amount.Floor()
	if amount.GreaterThan(maxAmount) {
		return 0, NewValidationError("amount", "Amount is too large")
	}
	return amount.IntPart(), nil
}

// TransactionStore persists the whole collection under a single key.
// Load returns an empty slice when nothing has been stored yet and an error
// wrapping ErrCorruptStore when the stored payload cannot be decoded.
type TransactionStore interface {
	Load(ctx context.Context) ([]Transaction, error)
	Save(ctx context.Context, transactions []Transaction) error
}
