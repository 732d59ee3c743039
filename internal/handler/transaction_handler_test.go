package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/service"
)

func TestGetTransactions(t *testing.T) {
	env := newTestEnv(t, scenarioTransactions()...)

	rec := env.do(http.MethodGet, "/api/v1/transactions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	decode(t, rec, &response)

	if len(response) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(response))
	}
	if response[0].TypeLabel != "Pemasukan" {
		t.Errorf("Expected type label 'Pemasukan', got %s", response[0].TypeLabel)
	}
	if response[2].Type != "savings" || response[2].Amount != 200000 {
		t.Errorf("Unexpected third transaction: %+v", response[2])
	}
}

func TestGetTransactions_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/transactions", "")

	if rec.Body.String() != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/transactions",
		`{"date": "2024-06-03", "type": "income", "amount": "1.000.000", "description": "Gaji"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response TransactionResponse
	decode(t, rec, &response)

	if response.Amount != 1000000 {
		t.Errorf("Expected amount 1000000, got %d", response.Amount)
	}
	if response.ID == 0 {
		t.Error("Expected a fresh id")
	}
	if env.store.SaveCalls != 1 {
		t.Errorf("Expected 1 save, got %d", env.store.SaveCalls)
	}
}

func TestCreateTransaction_NumericAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{"integer", `1000000`, 1000000},
		{"fraction is floored", `1500.75`, 1500},
		{"string with separators", `"1.500.000"`, 1500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(http.MethodPost, "/api/v1/transactions",
				`{"date": "2024-06-03", "type": "income", "amount": `+tt.amount+`, "description": "Gaji"}`)

			if rec.Code != http.StatusCreated {
				t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
			}

			var response TransactionResponse
			decode(t, rec, &response)

			if response.Amount != tt.expected {
				t.Errorf("Expected amount %d, got %d", tt.expected, response.Amount)
			}
		})
	}
}

func TestCreateTransaction_NegativeNumericAmount(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/transactions",
		`{"date": "2024-06-03", "type": "income", "amount": -5000}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	decode(t, rec, &problem)
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "amount" {
		t.Errorf("Expected error on field amount, got %+v", problem.Errors)
	}
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing date", `{"type": "income", "amount": "100"}`, "date"},
		{"bad date", `{"date": "03/06/2024", "type": "income", "amount": "100"}`, "date"},
		{"unknown type", `{"date": "2024-06-03", "type": "transfer", "amount": "100"}`, "type"},
		{"bad amount", `{"date": "2024-06-03", "type": "income", "amount": "abc"}`, "amount"},
		{"amount beyond int64", `{"date": "2024-06-03", "type": "income", "amount": "18446744073709551615"}`, "amount"},
		{"numeric amount beyond int64", `{"date": "2024-06-03", "type": "income", "amount": 18446744073709551615}`, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(http.MethodPost, "/api/v1/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}

			var problem ProblemDetails
			decode(t, rec, &problem)

			if problem.Type != ErrorTypeValidation {
				t.Errorf("Expected type %s, got %s", ErrorTypeValidation, problem.Type)
			}
			if len(problem.Errors) != 1 || problem.Errors[0].Field != tt.field {
				t.Errorf("Expected error on field %s, got %+v", tt.field, problem.Errors)
			}
			if env.store.SaveCalls != 0 {
				t.Errorf("Expected no save, got %d", env.store.SaveCalls)
			}
		})
	}
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/transactions", `{"date": `)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestProposeEdit_ThenConfirm(t *testing.T) {
	env := newTestEnv(t, scenarioTransactions()...)

	rec := env.do(http.MethodPost, "/api/v1/transactions/2/edit",
		`{"date": "2024-06-05", "type": "outcome", "amount": "75.000", "description": "Makan malam"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var proposal service.Proposal
	decode(t, rec, &proposal)

	if proposal.Kind != service.ProposalKindEdit {
		t.Errorf("Expected kind edit, got %s", proposal.Kind)
	}
	if tx, _ := env.ledger.Get(2); tx.Amount != 50000 {
		t.Errorf("Ledger changed before confirmation: %+v", tx)
	}

	rec = env.do(http.MethodPost, "/api/v1/proposals/"+proposal.ID.String()+"/confirm", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result service.ConfirmResult
	decode(t, rec, &result)

	if result.Message != "Transaksi berhasil diubah!" {
		t.Errorf("Unexpected message %q", result.Message)
	}
	tx, _ := env.ledger.Get(2)
	if tx.Amount != 75000 || tx.Date != "2024-06-05" || tx.Description != "Makan malam" {
		t.Errorf("Edit not applied: %+v", tx)
	}
}

func TestProposeEdit_NotFound(t *testing.T) {
	env := newTestEnv(t, scenarioTransactions()...)

	rec := env.do(http.MethodPost, "/api/v1/transactions/99/edit",
		`{"date": "2024-06-05", "type": "outcome", "amount": "1"}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestProposeEdit_InvalidID(t *testing.T) {
	env := newTestEnv(t, scenarioTransactions()...)

	rec := env.do(http.MethodPost, "/api/v1/transactions/abc/edit",
		`{"date": "2024-06-05", "type": "outcome", "amount": "1"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	decode(t, rec, &problem)
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "id" {
		t.Errorf("Expected error on field id, got %+v", problem.Errors)
	}
}

func TestProposeDelete_ThenConfirm(t *testing.T) {
	env := newTestEnv(t, scenarioTransactions()...)

	rec := env.do(http.MethodPost, "/api/v1/transactions/1/delete", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var proposal service.Proposal
	decode(t, rec, &proposal)
	if proposal.Transaction == nil || proposal.Transaction.Description != "Gaji" {
		t.Errorf("Expected proposal to carry the transaction, got %+v", proposal.Transaction)
	}
	if env.ledger.Len() != 3 {
		t.Errorf("Ledger changed before confirmation")
	}

	rec = env.do(http.MethodPost, "/api/v1/proposals/"+proposal.ID.String()+"/confirm", "")

	var result service.ConfirmResult
	decode(t, rec, &result)

	if result.Message != "Transaksi berhasil dihapus!" {
		t.Errorf("Unexpected message %q", result.Message)
	}
	if env.ledger.Len() != 2 {
		t.Errorf("Expected 2 transactions left, got %d", env.ledger.Len())
	}
}
