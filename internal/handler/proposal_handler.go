package handler

import (
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProposalHandler handles confirmation of staged mutations
type ProposalHandler struct {
	commands *service.CommandService
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(commands *service.CommandService) *ProposalHandler {
	return &ProposalHandler{commands: commands}
}

// ProposeDeleteMonth godoc
// @Summary Propose clearing the current month
// @Description Stage the removal of every transaction dated in the current month. The month is resolved again on confirm.
// @Tags proposals
// @Produce json
// @Success 201 {object} service.Proposal
// @Router /months/current/delete [post]
func (h *ProposalHandler) ProposeDeleteMonth(c echo.Context) error {
	proposal, err := h.commands.ProposeDeleteMonth()
	if err != nil {
		return handleServiceError(c, err, "propose month deletion")
	}
	return c.JSON(http.StatusCreated, proposal)
}

// GetProposal godoc
// @Summary Get a proposal
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID" format(uuid)
// @Success 200 {object} service.Proposal
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidProposalID(c)
	}

	proposal, err := h.commands.Get(id)
	if err != nil {
		return handleServiceError(c, err, "get proposal")
	}
	return c.JSON(http.StatusOK, proposal)
}

// ConfirmProposal godoc
// @Summary Confirm a proposal
// @Description Apply a staged mutation. A proposal is consumed by its first confirmation, successful or not.
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID" format(uuid)
// @Success 200 {object} service.ConfirmResult
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /proposals/{id}/confirm [post]
func (h *ProposalHandler) ConfirmProposal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidProposalID(c)
	}

	result, err := h.commands.Confirm(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err, "confirm proposal")
	}
	return c.JSON(http.StatusOK, result)
}

// CancelProposal godoc
// @Summary Cancel a proposal
// @Tags proposals
// @Param id path string true "Proposal ID" format(uuid)
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /proposals/{id} [delete]
func (h *ProposalHandler) CancelProposal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidProposalID(c)
	}

	if err := h.commands.Cancel(id); err != nil {
		return handleServiceError(c, err, "cancel proposal")
	}
	return c.NoContent(http.StatusNoContent)
}

func invalidProposalID(c echo.Context) error {
	return NewValidationError(c, "Invalid proposal ID", []ValidationError{
		{Field: "id", Message: "Must be a UUID"},
	})
}
