package handler

import (
	"fmt"
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the on-screen aggregates of the ledger
type SummaryHandler struct {
	ledger  *service.Ledger
	reports *service.ReportService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(ledger *service.Ledger, reports *service.ReportService) *SummaryHandler {
	return &SummaryHandler{ledger: ledger, reports: reports}
}

// TotalsResponse holds per-type sums
type TotalsResponse struct {
	Income  int64 `json:"income"`
	Outcome int64 `json:"outcome"`
	Savings int64 `json:"savings"`
}

// SummaryResponse is the headline view of the ledger
type SummaryResponse struct {
	Label            string `json:"label"`
	MonthPrefix      string `json:"monthPrefix"`
	TransactionCount int    `json:"transactionCount"`
	TotalsResponse
	Balance int64 `json:"balance"`
}

// WeekResponse holds the totals of one Sunday-started week
type WeekResponse struct {
	WeekStart string `json:"weekStart"`
	Title     string `json:"title"`
	TotalsResponse
}

// DayResponse holds the transactions and totals of one date
type DayResponse struct {
	Date         string                `json:"date"`
	Transactions []TransactionResponse `json:"transactions"`
	TotalsResponse
}

func toTotalsResponse(totals domain.Totals) TotalsResponse {
	return TotalsResponse{
		Income:  totals.Income,
		Outcome: totals.Outcome,
		Savings: totals.Savings,
	}
}

// GetSummary godoc
// @Summary Get the ledger summary
// @Description Totals per type and the balance (income minus outcome minus savings)
// @Tags summary
// @Produce json
// @Success 200 {object} SummaryResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	transactions := h.ledger.Transactions()
	totals := domain.CalculateTotals(transactions)

	return c.JSON(http.StatusOK, SummaryResponse{
		Label:            h.reports.Label(),
		MonthPrefix:      h.reports.MonthPrefix(),
		TransactionCount: len(transactions),
		TotalsResponse:   toTotalsResponse(totals),
		Balance:          totals.Balance(),
	})
}

// GetWeekly godoc
// @Summary Get weekly totals
// @Description Totals per Sunday-started week, oldest first
// @Tags summary
// @Produce json
// @Success 200 {array} WeekResponse
// @Router /summary/weekly [get]
func (h *SummaryHandler) GetWeekly(c echo.Context) error {
	buckets := h.ledger.WeeklyBuckets()

	weeks := make([]WeekResponse, 0, len(buckets))
	for i, key := range domain.SortedWeekKeys(buckets) {
		weeks = append(weeks, WeekResponse{
			WeekStart:      key,
			Title:          fmt.Sprintf("Minggu ke-%d", i+1),
			TotalsResponse: toTotalsResponse(buckets[key]),
		})
	}
	return c.JSON(http.StatusOK, weeks)
}

// GetDaily godoc
// @Summary Get daily detail
// @Description Transactions and totals per date, oldest first
// @Tags summary
// @Produce json
// @Success 200 {array} DayResponse
// @Router /summary/daily [get]
func (h *SummaryHandler) GetDaily(c echo.Context) error {
	groups := h.ledger.GroupByDate()

	days := make([]DayResponse, 0, len(groups))
	for _, date := range domain.SortedDates(groups) {
		txs := groups[date]
		days = append(days, DayResponse{
			Date:           date,
			Transactions:   toTransactionResponses(txs),
			TotalsResponse: toTotalsResponse(domain.CalculateTotals(txs)),
		})
	}
	return c.JSON(http.StatusOK, days)
}
