// Package export writes a calculator session to disk: the log as plain text
// or a PDF, the recorded values as a PNG plot.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexshd/bridgecalc"
)

// ErrNothingToPlot is returned when fewer than two plottable samples exist.
var ErrNothingToPlot = errors.New("nothing to plot: need at least two positive samples")

// Format selects the export encoding.
type Format int

const (
	FormatText Format = iota
	FormatPDF
	FormatPlot
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPDF:
		return "pdf"
	case FormatPlot:
		return "png"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".png":
		return FormatPlot, nil
	default:
		return 0, fmt.Errorf("unsupported export extension %q (want .txt, .pdf or .png)", filepath.Ext(path))
	}
}

// Sample is one recorded value for the plot.
type Sample struct {
	Quantity bridgecalc.Quantity
	Index    float64
	Value    float64
}

// Document is everything an export may draw from.
type Document struct {
	Title   string
	Subject string
	Lines   []string
	Samples []Sample
}

// WriteText writes one log line per text line.
func WriteText(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes doc in format to w.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatText:
		return WriteText(w, doc.Lines)
	case FormatPDF:
		return WritePDF(w, doc)
	case FormatPlot:
		return WritePlot(w, doc.Samples, doc.Title)
	default:
		return fmt.Errorf("unsupported export format %s", format)
	}
}

// ToFile encodes doc and writes it to path. Nothing is written when encoding
// fails.
func ToFile(path string, format Format, doc Document) error {
	var buf bytes.Buffer
	if err := Write(&buf, format, doc); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}
