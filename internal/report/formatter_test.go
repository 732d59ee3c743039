package report

import (
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Currency(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{1000000, "Rp 1.000.000"},
		{-5000, "-Rp 5.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Currency(tt.amount))
		})
	}
}

func TestFormatter_Date(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "3 Jun 2024", f.Date("2024-06-03"))
	assert.Equal(t, "17 Agu 2024", f.Date("2024-08-17"))
	assert.Equal(t, "not-a-date", f.Date("not-a-date"))
}

func TestFormatter_Cell(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "Gaji", f.Cell(domain.TextCell("Gaji")))
	assert.Equal(t, "Rp 750.000", f.Cell(domain.AmountCell(750000)))
	assert.Equal(t, "1 Des 2024", f.Cell(domain.DateCell("2024-12-01")))
	assert.Equal(t, "Juni 2024", f.MonthLabel(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}
