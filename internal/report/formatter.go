package report

import (
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts, dates and labels the Indonesian way
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a Formatter using Indonesian digit grouping
func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.Indonesian)}
}

// Currency formats an amount as rupiah without fraction digits, e.g. "Rp 1.000.000"
func (f *Formatter) Currency(amount int64) string {
	if amount < 0 {
		return "-Rp " + f.printer.Sprintf("%d", -amount)
	}
	return "Rp " + f.printer.Sprintf("%d", amount)
}

// Date formats a YYYY-MM-DD date as "3 Jun 2024". Unparseable input is returned as is.
func (f *Formatter) Date(date string) string {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return util.ShortDate(parsed)
}

// MonthLabel returns the "Juni 2024" label of t
func (f *Formatter) MonthLabel(t time.Time) string {
	return util.MonthLabel(t)
}

// Cell formats a typed table cell
func (f *Formatter) Cell(cell domain.Cell) string {
	switch cell.Kind {
	case domain.CellKindAmount:
		return f.Currency(cell.Amount)
	case domain.CellKindDate:
		return f.Date(cell.Date)
	default:
		return cell.Text
	}
}
