package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/report"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/dafibh/dompet/dompet-backend/internal/websocket"
	"github.com/labstack/echo/v4"
)

// testEnv wires real services over in-memory test doubles
type testEnv struct {
	e        *echo.Echo
	store    *testutil.MockTransactionStore
	objects  *testutil.MockObjectStore
	clock    *testutil.StepClock
	ledger   *service.Ledger
	commands *service.CommandService
	reports  *service.ReportService
	hub      *websocket.Hub
}

func newTestEnv(t *testing.T, seed ...domain.Transaction) *testEnv {
	t.Helper()

	env := &testEnv{
		e:       echo.New(),
		store:   testutil.NewMockTransactionStore(seed...),
		objects: testutil.NewMockObjectStore(),
		clock:   testutil.NewStepClock(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), time.Millisecond),
		hub:     websocket.NewHub(),
	}

	env.ledger = service.NewLedger(env.store)
	env.ledger.SetClock(env.clock.Now)
	if err := env.ledger.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load ledger: %v", err)
	}

	env.commands = service.NewCommandService(env.ledger, time.Hour, time.UTC)
	env.commands.SetClock(env.clock.Now)

	sink := report.NewDocumentSink(env.objects, report.NewPDFRenderer(report.NewFormatter(), report.DefaultPageLines), "")
	env.reports = service.NewReportService(env.ledger, sink, time.UTC)
	env.reports.SetClock(env.clock.Now)

	RegisterRoutes(env.e, Handlers{
		Transactions: NewTransactionHandler(env.ledger, env.commands),
		Proposals:    NewProposalHandler(env.commands),
		Summary:      NewSummaryHandler(env.ledger, env.reports),
		Reports:      NewReportHandler(env.reports, sink),
		WebSocket:    NewWebSocketHandler(env.hub, nil),
		Docs:         NewDocsHandler(Server{URL: "http://localhost:8080/", Description: "Local Development"}),
	})
	return env
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
}

func scenarioTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Date: "2024-06-03", Type: domain.TransactionTypeIncome, Amount: 1000000, Description: "Gaji"},
		{ID: 2, Date: "2024-06-03", Type: domain.TransactionTypeOutcome, Amount: 50000, Description: "Makan"},
		{ID: 3, Date: "2024-06-04", Type: domain.TransactionTypeSavings, Amount: 200000, Description: "Celengan"},
	}
}
