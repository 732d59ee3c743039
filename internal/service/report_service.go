package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/metrics"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/dafibh/dompet/dompet-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// EmptyReportText is the only content of a report over an empty ledger
const EmptyReportText = "Tidak ada transaksi untuk dicetak."

var (
	summaryHead = []string{"Jenis", "Total"}
	dailyHead   = []string{"Tanggal", "Jenis", "Deskripsi", "Jumlah"}
)

// AssembleReport turns a ledger snapshot into the ordered report document:
// a monthly summary, one block per calendar week, then one block per date.
// It is pure and deterministic.
func AssembleReport(transactions []domain.Transaction, label string) []domain.ReportBlock {
	if len(transactions) == 0 {
		return []domain.ReportBlock{{
			Kind:    domain.BlockKindText,
			Section: domain.SectionEmpty,
			Text:    EmptyReportText,
		}}
	}

	blocks := make([]domain.ReportBlock, 0, 8)
	blocks = append(blocks, summaryBlocks(transactions, label)...)
	blocks = append(blocks, weeklyBlocks(transactions, label)...)
	blocks = append(blocks, dailyBlocks(transactions)...)
	return blocks
}

func summaryBlocks(transactions []domain.Transaction, label string) []domain.ReportBlock {
	totals := domain.CalculateTotals(transactions)

	return []domain.ReportBlock{
		heading(domain.SectionSummary, 1, "Ringkasan Bulanan - "+label),
		table(domain.SectionSummary, summaryHead, [][]domain.Cell{
			{domain.TextCell("Total Pemasukan"), domain.AmountCell(totals.Income)},
			{domain.TextCell("Total Pengeluaran"), domain.AmountCell(totals.Outcome)},
			{domain.TextCell("Total Tabungan"), domain.AmountCell(totals.Savings)},
			{domain.TextCell("Sisa Uang"), domain.AmountCell(totals.Balance())},
		}),
	}
}

func weeklyBlocks(transactions []domain.Transaction, label string) []domain.ReportBlock {
	buckets := domain.WeeklyBuckets(transactions)
	if len(buckets) == 0 {
		return nil
	}

	blocks := []domain.ReportBlock{heading(domain.SectionWeekly, 1, "Ringkasan Mingguan - "+label)}
	for i, key := range domain.SortedWeekKeys(buckets) {
		blocks = append(blocks,
			heading(domain.SectionWeekly, 2, fmt.Sprintf("Minggu ke-%d", i+1)),
			table(domain.SectionWeekly, summaryHead, totalsRows(buckets[key])),
		)
	}
	return blocks
}

func dailyBlocks(transactions []domain.Transaction) []domain.ReportBlock {
	grouped := domain.GroupByDate(transactions)

	var blocks []domain.ReportBlock
	for _, date := range domain.SortedDates(grouped) {
		group := grouped[date]

		rows := make([][]domain.Cell, 0, len(group))
		for _, tx := range group {
			rows = append(rows, []domain.Cell{
				domain.DateCell(tx.Date),
				domain.TextCell(tx.Type.Label()),
				domain.TextCell(tx.Description),
				domain.AmountCell(tx.Amount),
			})
		}

		dateHeading := heading(domain.SectionDaily, 2, "Tanggal")
		dateHeading.Date = date
		blocks = append(blocks,
			dateHeading,
			table(domain.SectionDaily, dailyHead, rows),
			table(domain.SectionDaily, summaryHead, totalsRows(domain.CalculateTotals(group))),
		)
	}
	return blocks
}

// totalsRows lists the three type totals without a balance row
func totalsRows(totals domain.Totals) [][]domain.Cell {
	rows := make([][]domain.Cell, 0, 3)
	for _, txType := range domain.TransactionTypes() {
		rows = append(rows, []domain.Cell{domain.TextCell(txType.Label()), domain.AmountCell(totals.Of(txType))})
	}
	return rows
}

func heading(section domain.ReportSection, level int, text string) domain.ReportBlock {
	return domain.ReportBlock{Kind: domain.BlockKindHeading, Section: section, Level: level, Text: text}
}

func table(section domain.ReportSection, head []string, rows [][]domain.Cell) domain.ReportBlock {
	headCopy := make([]string, len(head))
	copy(headCopy, head)
	return domain.ReportBlock{Kind: domain.BlockKindTable, Section: section, Table: &domain.Table{Head: headCopy, Rows: rows}}
}

// TransactionSource provides a snapshot of the ledger
type TransactionSource interface {
	Transactions() []domain.Transaction
}

// Report is an assembled document together with its label
type Report struct {
	Label  string               `json:"label"`
	Blocks []domain.ReportBlock `json:"blocks"`
}

// ReportService assembles the ledger report and hands it to a sink
type ReportService struct {
	source   TransactionSource
	sink     domain.ReportSink
	location *time.Location
	now      func() time.Time

	eventPublisher websocket.EventPublisher
	metrics        *metrics.Metrics
}

// NewReportService creates a new ReportService. Labels are computed in location.
func NewReportService(source TransactionSource, sink domain.ReportSink, location *time.Location) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		source:   source,
		sink:     sink,
		location: location,
		now:      time.Now,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ReportService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the collectors exports are recorded on
func (s *ReportService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// SetClock replaces the clock used to compute the report label
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// Label returns the "Month Year" label of the current month
func (s *ReportService) Label() string {
	return util.MonthLabel(util.CurrentMonth(s.now(), s.location))
}

// MonthPrefix returns the YYYY-MM prefix of the current month
func (s *ReportService) MonthPrefix() string {
	return domain.MonthPrefix(util.CurrentMonth(s.now(), s.location))
}

// Build assembles the report over the current ledger snapshot
func (s *ReportService) Build() Report {
	label := s.Label()
	return Report{
		Label:  label,
		Blocks: AssembleReport(s.source.Transactions(), label),
	}
}

// Export assembles the report and publishes it through the sink
func (s *ReportService) Export(ctx context.Context) (*domain.ReportArtifact, error) {
	report := s.Build()

	artifact, err := s.sink.Publish(ctx, report.Label, report.Blocks)
	s.metrics.ReportExport(err)
	if err != nil {
		return nil, fmt.Errorf("publish report: %w", err)
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.ReportExported(artifact))
	}

	log.Info().
		Str("label", report.Label).
		Str("artifact", artifact.Name).
		Int("pages", artifact.Pages).
		Msg("Report exported")
	return artifact, nil
}
