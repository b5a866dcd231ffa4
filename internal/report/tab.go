// Package report provides result output formatters.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/openpgx/pgxcall/internal/datasource/snptrait"
	"github.com/openpgx/pgxcall/internal/diplotype"
)

// TabWriter writes per-gene metabolizer results in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited result writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Gene",
			"Diplotype",
			"Phenotype",
			"Markers_found",
			"Markers_total",
			"Coverage",
			"Confidence",
			"Note",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single gene result.
func (tw *TabWriter) Write(r *diplotype.Result) error {
	note := r.Note
	if note == "" {
		note = "-"
	}

	values := []string{
		r.Gene,
		r.Diplotype,
		r.Phenotype,
		fmt.Sprintf("%d", r.MarkersFound),
		fmt.Sprintf("%d", r.MarkersTotal),
		fmt.Sprintf("%.2f", r.Coverage),
		r.Confidence,
		note,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// TraitWriter writes single-SNP trait findings in tab-delimited format.
type TraitWriter struct {
	w *bufio.Writer
}

// NewTraitWriter creates a new tab-delimited trait finding writer.
func NewTraitWriter(w io.Writer) *TraitWriter {
	return &TraitWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (tw *TraitWriter) WriteHeader() error {
	_, err := tw.w.WriteString("#Marker\tGenotype\tStatus\tSummary\n")
	return err
}

// Write writes a single trait finding.
func (tw *TraitWriter) Write(f snptrait.Finding) error {
	_, err := tw.w.WriteString(f.Marker + "\t" + f.Genotype + "\t" + f.Status + "\t" + f.Summary + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TraitWriter) Flush() error {
	return tw.w.Flush()
}
