package domain

import "context"

// BlockKind identifies the type of a report block
type BlockKind string

const (
	BlockKindHeading BlockKind = "heading"
	BlockKindTable   BlockKind = "table"
	BlockKindText    BlockKind = "text"
)

// ReportSection names the part of the document a block belongs to.
// Sinks start every section on a fresh page.
type ReportSection string

const (
	SectionSummary ReportSection = "summary"
	SectionWeekly  ReportSection = "weekly"
	SectionDaily   ReportSection = "daily"
	SectionEmpty   ReportSection = "empty"
)

// CellKind tells the renderer how to format a cell value
type CellKind string

const (
	CellKindText   CellKind = "text"
	CellKindAmount CellKind = "amount"
	CellKindDate   CellKind = "date"
)

// Cell is a single unformatted table value
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Amount int64    `json:"amount,omitempty"`
	Date   string   `json:"date,omitempty"`
}

// TextCell creates a literal text cell
func TextCell(text string) Cell {
	return Cell{Kind: CellKindText, Text: text}
}

// AmountCell creates a currency cell
func AmountCell(amount int64) Cell {
	return Cell{Kind: CellKindAmount, Amount: amount}
}

// DateCell creates a calendar date cell (YYYY-MM-DD)
func DateCell(date string) Cell {
	return Cell{Kind: CellKindDate, Date: date}
}

// Table is a header row plus body rows of typed cells
type Table struct {
	Head []string `json:"head"`
	Rows [][]Cell `json:"rows"`
}

// ReportBlock is a renderer-agnostic unit of document content.
// Heading blocks may carry a Date, rendered after the text ("Tanggal: 3 Jun 2024").
type ReportBlock struct {
	Kind    BlockKind     `json:"kind"`
	Section ReportSection `json:"section"`
	Level   int           `json:"level,omitempty"`
	Text    string        `json:"text,omitempty"`
	Date    string        `json:"date,omitempty"`
	Table   *Table        `json:"table,omitempty"`
}

// ReportArtifact describes a document persisted by a sink
type ReportArtifact struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContentType string `json:"contentType"`
	Pages       int    `json:"pages"`
	Size        int64  `json:"size"`
}

// ReportSink renders and persists an assembled report
type ReportSink interface {
	Publish(ctx context.Context, label string, blocks []ReportBlock) (*ReportArtifact, error)
}
