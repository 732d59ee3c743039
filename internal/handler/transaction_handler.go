package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledger   *service.Ledger
	commands *service.CommandService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledger *service.Ledger, commands *service.CommandService) *TransactionHandler {
	return &TransactionHandler{
		ledger:   ledger,
		commands: commands,
	}
}

// TransactionRequest is the body of add and edit requests
type TransactionRequest struct {
	Date        string      `json:"date" example:"2024-06-03"`
	Type        string      `json:"type" enums:"income,outcome,savings"`
	Amount      AmountInput `json:"amount" swaggertype:"string" example:"1.000.000"`
	Description string      `json:"description"`
}

// AmountInput is an amount sent either as a string with thousand
// separators ("1.000.000", "1500,75") or as a JSON number (1000000)
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// a JSON fraction uses a dot, which string input treats as a thousand separator
	*a = AmountInput(strings.Replace(n.String(), ".", ",", 1))
	return nil
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	TypeLabel   string `json:"typeLabel"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Type:        string(tx.Type),
		TypeLabel:   tx.Type.Label(),
		Amount:      tx.Amount,
		Description: tx.Description,
	}
}

func toTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses
}

// GetTransactions godoc
// @Summary List transactions
// @Description List every transaction in insertion order
// @Tags transactions
// @Produce json
// @Success 200 {array} TransactionResponse
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	return c.JSON(http.StatusOK, toTransactionResponses(h.ledger.Transactions()))
}

// CreateTransaction godoc
// @Summary Add a transaction
// @Description Add a dated income, outcome or savings entry. The id is assigned by the server.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction to add"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	tx, err := h.ledger.Add(c.Request().Context(), service.AddInput{
		Date:        req.Date,
		Type:        domain.TransactionType(req.Type),
		Amount:      string(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		return handleServiceError(c, err, "add transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// ProposeEdit godoc
// @Summary Propose an edit
// @Description Stage a replacement for a transaction. Nothing changes until the proposal is confirmed.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body TransactionRequest true "Replacement values"
// @Success 201 {object} service.Proposal
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id}/edit [post]
func (h *TransactionHandler) ProposeEdit(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return NewValidationError(c, "Invalid transaction ID", []ValidationError{
			{Field: "id", Message: "Must be a positive integer"},
		})
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := domain.ParseAmount(string(req.Amount))
	if err != nil {
		return handleServiceError(c, err, "propose edit")
	}

	proposal, err := h.commands.ProposeEdit(domain.Transaction{
		ID:          id,
		Date:        req.Date,
		Type:        domain.TransactionType(req.Type),
		Amount:      amount,
		Description: req.Description,
	})
	if err != nil {
		return handleServiceError(c, err, "propose edit")
	}

	return c.JSON(http.StatusCreated, proposal)
}

// ProposeDelete godoc
// @Summary Propose a deletion
// @Description Stage the removal of a transaction. Nothing changes until the proposal is confirmed.
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 201 {object} service.Proposal
// @Failure 400 {object} ProblemDetails
// @Router /transactions/{id}/delete [post]
func (h *TransactionHandler) ProposeDelete(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return NewValidationError(c, "Invalid transaction ID", []ValidationError{
			{Field: "id", Message: "Must be a positive integer"},
		})
	}

	proposal, err := h.commands.ProposeDelete(id)
	if err != nil {
		return handleServiceError(c, err, "propose delete")
	}

	return c.JSON(http.StatusCreated, proposal)
}

func parseTransactionID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
