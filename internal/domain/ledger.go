package domain

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Totals holds the per-type sums over a set of transactions
type Totals struct {
	Income  int64 `json:"income"`
	Outcome int64 `json:"outcome"`
	Savings int64 `json:"savings"`
}

// Add accumulates a single transaction into the totals
func (t *Totals) Add(tx Transaction) {
	switch tx.Type {
	case TransactionTypeIncome:
		t.Income += tx.Amount
	case TransactionTypeOutcome:
		t.Outcome += tx.Amount
	case TransactionTypeSavings:
		t.Savings += tx.Amount
	}
}

// Of returns the total for a single type
func (t Totals) Of(txType TransactionType) int64 {
	switch txType {
	case TransactionTypeIncome:
		return t.Income
	case TransactionTypeOutcome:
		return t.Outcome
	case TransactionTypeSavings:
		return t.Savings
	}
	return 0
}

// Balance is income minus outcome minus savings; savings leave the spendable pool
func (t Totals) Balance() int64 {
	return t.Income - t.Outcome - t.Savings
}

// Headroom is how much can still be recorded before the combined total of
// all types leaves the int64 range
func (t Totals) Headroom() int64 {
	return math.MaxInt64 - t.Income - t.Outcome - t.Savings
}

// CalculateTotals sums amounts per type; an empty set yields all zeros
func CalculateTotals(transactions []Transaction) Totals {
	var totals Totals
	for _, tx := range transactions {
		totals.Add(tx)
	}
	return totals
}

// CalculateBalance returns income - outcome - savings over transactions
func CalculateBalance(transactions []Transaction) int64 {
	return CalculateTotals(transactions).Balance()
}

// GroupByDate groups transactions by their literal date string.
// Within a group transactions keep their order in the input.
func GroupByDate(transactions []Transaction) map[string][]Transaction {
	grouped := make(map[string][]Transaction)
	for _, tx := range transactions {
		grouped[tx.Date] = append(grouped[tx.Date], tx)
	}
	return grouped
}

// SortedDates returns the group keys in chronological order
func SortedDates(grouped map[string][]Transaction) []string {
	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// WeekStart returns midnight UTC of the Sunday starting the week containing date
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekKey returns the bucket key (YYYY-MM-DD of the week start) for a transaction date
func WeekKey(date string) (string, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return WeekStart(parsed).Format(DateLayout), nil
}

// WeeklyBuckets sums transactions per week start. A bucket exists only when at
// least one transaction falls into it. Rows with unparseable dates are skipped.
func WeeklyBuckets(transactions []Transaction) map[string]Totals {
	buckets := make(map[string]Totals)
	for _, tx := range transactions {
		key, err := WeekKey(tx.Date)
		if err != nil {
			continue
		}
		totals := buckets[key]
		totals.Add(tx)
		buckets[key] = totals
	}
	return buckets
}

// SortedWeekKeys returns bucket keys in ascending week-start order
func SortedWeekKeys(buckets map[string]Totals) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MonthPrefix returns the YYYY-MM prefix of t
func MonthPrefix(t time.Time) string {
	return t.Format(MonthPrefixLayout)
}

// ValidMonthPrefix reports whether prefix is a well formed YYYY-MM value
func ValidMonthPrefix(prefix string) bool {
	if len(prefix) != len(MonthPrefixLayout) {
		return false
	}
	_, err := time.Parse(MonthPrefixLayout, prefix)
	return err == nil
}

// FilterByMonthPrefix returns the transactions dated inside the given month
func FilterByMonthPrefix(transactions []Transaction, prefix string) []Transaction {
	filtered := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, prefix) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
