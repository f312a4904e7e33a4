package report

import (
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// FontStyle selects between the regular and bold report fonts.
type FontStyle string

const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
)

// Document is the drawing surface the exporter writes to. Coordinates are
// in points from the top-left corner of the current page; y is the text
// baseline.
type Document interface {
	AddPage()
	SetFont(style FontStyle, size float64)
	Text(x, y float64, s string)
	PageCount() int
	Output(w io.Writer) error
}

// fixedCreationDate stands in for the generation time in document metadata.
var fixedCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type pdfDocument struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewPDFDocument returns a Letter-sized PDF document using the Helvetica
// core font. Text is translated to cp1252; runes outside it are not drawn
// faithfully.
func NewPDFDocument(title string) Document {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(fixedCreationDate)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	pdf.SetFont("Helvetica", "", 12)
	return &pdfDocument{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *pdfDocument) AddPage() {
	d.pdf.AddPage()
}

func (d *pdfDocument) SetFont(style FontStyle, size float64) {
	d.pdf.SetFont("Helvetica", string(style), size)
}

func (d *pdfDocument) Text(x, y float64, s string) {
	d.pdf.Text(x, y, d.translate(s))
}

func (d *pdfDocument) PageCount() int {
	return d.pdf.PageCount()
}

func (d *pdfDocument) Output(w io.Writer) error {
	return d.pdf.Output(w)
}
