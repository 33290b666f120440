package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Page layout for the PDF log.
const (
	pdfFont       = "Arial"
	pdfFontSize   = 12
	pdfLineHeight = 10 // mm
)

// WritePDF writes the log lines to an A4 PDF, one cell per line.
func WritePDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("bridgecalc", true)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Subject != "" {
		pdf.SetSubject(doc.Subject, true)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range doc.Lines {
		pdf.CellFormat(0, pdfLineHeight, tr(line), "", 1, "", false, 0, "")
	}

	return pdf.Output(w)
}
