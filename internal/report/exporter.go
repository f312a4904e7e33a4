// Package report renders the expense table and total into a paginated
// document on disk.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"budget/internal/core"
	applog "budget/internal/log"
)

const (
	Title           = "Expense Report"
	DefaultFileName = "expenses_report.pdf"
)

var columnHeaders = [4]string{"Date", "Category", "Amount", "Description"}

// Exporter writes expense reports to a fixed path.
type Exporter struct {
	dir         string
	fileName    string
	currency    string
	layout      Layout
	newDocument func() Document
	logger      *applog.Logger
}

type Option func(*Exporter)

// WithDocumentFactory replaces the PDF backend.
func WithDocumentFactory(f func() Document) Option {
	return func(e *Exporter) { e.newDocument = f }
}

// NewExporter writes to dir/fileName. An empty dir means the current
// working directory and an empty fileName means DefaultFileName.
func NewExporter(dir, fileName, currency string, opts ...Option) (*Exporter, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	if fileName == "" {
		fileName = DefaultFileName
	}
	e := &Exporter{
		dir:         dir,
		fileName:    fileName,
		currency:    currency,
		layout:      LetterLayout(),
		newDocument: func() Document { return NewPDFDocument(Title) },
		logger:      applog.ForComponent(applog.ComponentReport),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Path is where Export writes the report.
func (e *Exporter) Path() string {
	return filepath.Join(e.dir, e.fileName)
}

// Export renders rows and total and replaces the file at Path. Nothing is
// written when rows is empty.
func (e *Exporter) Export(ctx context.Context, rows []core.Row, total float64) (string, error) {
	if len(rows) == 0 {
		return "", &core.ExportError{Kind: core.NoData}
	}

	doc := e.newDocument()
	e.Render(doc, rows, total)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	path := e.Path()
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}

	e.logger.WithFields(applog.NewFields().
		WithOperation(applog.OpExport).
		WithReport(path, len(rows), doc.PageCount()).
		WithTotal(total)).
		InfoContext(ctx, "Expense report exported")

	return path, nil
}

// Render draws the report onto doc: title, column headers, one line per
// row and the total line. Rows continue onto new pages as needed.
func (e *Exporter) Render(doc Document, rows []core.Row, total float64) {
	l := e.layout
	doc.AddPage()

	doc.SetFont(Bold, l.TitleSize)
	doc.Text(l.TitleX, l.TitleY, Title)

	doc.SetFont(Bold, l.HeaderSize)
	for i, h := range columnHeaders {
		doc.Text(l.Columns[i], l.HeaderY, h)
	}

	y := l.FirstRowY
	doc.SetFont(Regular, l.BodySize)
	for _, r := range rows {
		cells := [4]string{r.Date, r.Category, core.FormatAmount(r.Amount), r.Description}
		for i, c := range cells {
			doc.Text(l.Columns[i], y, c)
		}
		y += l.RowHeight
		if y > l.RowLimitY {
			doc.AddPage()
			doc.SetFont(Regular, l.BodySize)
			y = l.TopY
		}
	}

	if y > l.TotalLimitY {
		doc.AddPage()
		y = l.TopY
	}
	doc.SetFont(Bold, l.HeaderSize)
	doc.Text(l.Columns[0], y+l.TotalOffset, TotalLine(e.currency, total))
}

// TotalLine is the closing line of the report.
func TotalLine(currency string, total float64) string {
	return "Total Expenses: " + core.FormatTotal(currency, total)
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}
	return nil
}
