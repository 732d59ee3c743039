package report

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/go-pdf/fpdf"
)

// DefaultPageLines is the page budget used when none is configured
const DefaultPageLines = 60

const (
	footerLines = 2
	minBudget   = 10

	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 15.0
	fontFamily = "Helvetica"
)

// Document is a rendered, paginated report
type Document struct {
	Body  []byte
	Pages int
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineText
	lineTableHead
	lineTableRow
)

// line is one row of the page grid. Every line has the same height.
type line struct {
	kind  lineKind
	level int
	text  string
	cells []string
	table *tableLayout
}

type tableLayout struct {
	head       []string
	weights    []float64
	rightAlign []bool
}

// PDFRenderer lays report blocks out on A4 pages with grid tables.
// Every section starts on a new page; a block that does not fit on the
// current page moves to the next one.
type PDFRenderer struct {
	formatter *Formatter
	pageLines int
	compress  bool
}

// NewPDFRenderer creates a renderer with the given page budget in lines
func NewPDFRenderer(formatter *Formatter, pageLines int) *PDFRenderer {
	if pageLines < minBudget {
		pageLines = DefaultPageLines
	}
	return &PDFRenderer{formatter: formatter, pageLines: pageLines, compress: true}
}

// Render paginates blocks into a PDF document
func (r *PDFRenderer) Render(blocks []domain.ReportBlock) (Document, error) {
	pages := r.layout(blocks)

	lineHeight := (pageHeight - 2*margin) / float64(r.pageLines)
	fontSize := math.Min(11, math.Max(5, lineHeight*72/25.4*0.7))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("dompet", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(pageHeight - margin)
		pdf.SetFont(fontFamily, "I", fontSize*0.85)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("Halaman %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	contentWidth := pageWidth - 2*margin
	for _, page := range pages {
		pdf.AddPage()
		for _, ln := range page {
			r.draw(pdf, tr, ln, lineHeight, fontSize, contentWidth)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("render pdf: %w", err)
	}
	return Document{Body: buf.Bytes(), Pages: pdf.PageCount()}, nil
}

func (r *PDFRenderer) draw(pdf *fpdf.Fpdf, tr func(string) string, ln line, lineHeight, fontSize, contentWidth float64) {
	switch ln.kind {
	case lineHeading:
		size, border := fontSize*1.15, ""
		if ln.level <= 1 {
			size, border = fontSize*1.3, "B"
		}
		pdf.SetFont(fontFamily, "B", size)
		pdf.CellFormat(0, lineHeight, tr(ln.text), border, 1, "LM", false, 0, "")
	case lineText:
		pdf.SetFont(fontFamily, "", fontSize)
		pdf.CellFormat(0, lineHeight, tr(ln.text), "", 1, "LM", false, 0, "")
	case lineTableHead, lineTableRow:
		head := ln.kind == lineTableHead
		style := ""
		if head {
			style = "B"
			pdf.SetFillColor(230, 230, 230)
		}
		pdf.SetFont(fontFamily, style, fontSize)

		var total float64
		for _, w := range ln.table.weights {
			total += w
		}
		for i, text := range ln.cells {
			align := "LM"
			if !head && ln.table.rightAlign[i] {
				align = "RM"
			}
			width := contentWidth * ln.table.weights[i] / total
			pdf.CellFormat(width, lineHeight, tr(text), "1", 0, align, head, 0, "")
		}
		pdf.Ln(lineHeight)
	default:
		pdf.Ln(lineHeight)
	}
}

// layout splits blocks into pages of lines
func (r *PDFRenderer) layout(blocks []domain.ReportBlock) [][]line {
	p := &paginator{budget: r.pageLines - footerLines}
	p.newPage()

	var section domain.ReportSection
	for i, block := range blocks {
		if i > 0 && block.Section != section {
			p.newPage()
		}
		section = block.Section
		p.place(r.blockLines(block))
	}
	return p.pages
}

func (r *PDFRenderer) blockLines(block domain.ReportBlock) []line {
	switch block.Kind {
	case domain.BlockKindHeading:
		text := block.Text
		if block.Date != "" {
			text = fmt.Sprintf("%s: %s", text, r.formatter.Date(block.Date))
		}
		return []line{{kind: lineHeading, level: block.Level, text: text}, {kind: lineBlank}}
	case domain.BlockKindTable:
		if block.Table == nil {
			return nil
		}
		return append(r.tableLines(block.Table), line{kind: lineBlank})
	default:
		return []line{{kind: lineText, text: block.Text}, {kind: lineBlank}}
	}
}

func (r *PDFRenderer) tableLines(table *domain.Table) []line {
	cols := len(table.Head)
	for _, row := range table.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	layout := &tableLayout{
		head:       make([]string, cols),
		weights:    make([]float64, cols),
		rightAlign: make([]bool, cols),
	}
	copy(layout.head, table.Head)
	for i, head := range layout.head {
		layout.weights[i] = float64(utf8.RuneCountInString(head) + 2)
	}

	lines := []line{{kind: lineTableHead, cells: layout.head, table: layout}}
	for _, row := range table.Rows {
		cells := make([]string, cols)
		for j, cell := range row {
			cells[j] = r.formatter.Cell(cell)
			if w := float64(utf8.RuneCountInString(cells[j]) + 2); w > layout.weights[j] {
				layout.weights[j] = w
			}
			if cell.Kind == domain.CellKindAmount {
				layout.rightAlign[j] = true
			}
		}
		lines = append(lines, line{kind: lineTableRow, cells: cells, table: layout})
	}
	return lines
}

// paginator accumulates lines into pages of at most budget lines
type paginator struct {
	budget int
	pages  [][]line
}

func (p *paginator) newPage() {
	if n := len(p.pages); n > 0 && len(p.pages[n-1]) == 0 {
		return
	}
	p.pages = append(p.pages, []line{})
}

func (p *paginator) current() []line {
	return p.pages[len(p.pages)-1]
}

func (p *paginator) add(ln line) {
	p.pages[len(p.pages)-1] = append(p.pages[len(p.pages)-1], ln)
}

// place appends a block, moving it to a fresh page when it does not fit.
// Blocks taller than a page are split; a table continued on a new page
// repeats its head row.
func (p *paginator) place(lines []line) {
	if len(lines) == 0 {
		return
	}
	if len(p.current())+len(lines) > p.budget && len(p.current()) > 0 {
		p.newPage()
	}
	for _, ln := range lines {
		if len(p.current()) >= p.budget {
			p.newPage()
			if ln.kind == lineTableRow {
				p.add(line{kind: lineTableHead, cells: ln.table.head, table: ln.table})
			}
		}
		if ln.kind == lineBlank && len(p.current()) == 0 {
			continue
		}
		p.add(ln)
	}
}
