package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles every API handler
type Handlers struct {
	Transactions *TransactionHandler
	Proposals    *ProposalHandler
	Summary      *SummaryHandler
	Reports      *ReportHandler
	WebSocket    *WebSocketHandler
	Docs         *DocsHandler
}

// RegisterRoutes sets up all API routes. Extra middleware applies to the /api/v1 group.
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	// API version 1
	api := e.Group("/api/v1", apiMiddleware...)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", h.Transactions.GetTransactions)
	transactions.POST("", h.Transactions.CreateTransaction)
	transactions.POST("/:id/edit", h.Transactions.ProposeEdit)
	transactions.POST("/:id/delete", h.Transactions.ProposeDelete)

	// Month routes
	months := api.Group("/months")
	months.POST("/current/delete", h.Proposals.ProposeDeleteMonth)

	// Proposal routes
	proposals := api.Group("/proposals")
	proposals.GET("/:id", h.Proposals.GetProposal)
	proposals.POST("/:id/confirm", h.Proposals.ConfirmProposal)
	proposals.DELETE("/:id", h.Proposals.CancelProposal)

	// Summary routes
	summary := api.Group("/summary")
	summary.GET("", h.Summary.GetSummary)
	summary.GET("/weekly", h.Summary.GetWeekly)
	summary.GET("/daily", h.Summary.GetDaily)

	// Report routes
	reports := api.Group("/report")
	reports.GET("", h.Reports.GetReport)
	reports.POST("/export", h.Reports.ExportReport)
	reports.GET("/download", h.Reports.DownloadReport)

	// WebSocket change feed
	e.GET("/ws", h.WebSocket.HandleWS)

	// API documentation
	if h.Docs != nil {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		e.GET("/openapi.json", h.Docs.ServeOpenAPI3Spec)
	}
}
