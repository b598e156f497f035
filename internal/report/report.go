// Package report renders flight comparison results as text, JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cv/flt/flights"
	"github.com/jszwec/csvutil"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Options controls how results are rendered.
type Options struct {
	Format  string // FormatText, FormatJSON or FormatCSV
	Explain bool   // Append reason and keys to text output
}

// Row is the flat form of a result used for JSON and CSV output.
type Row struct {
	A      string `csv:"a" json:"a"`
	B      string `csv:"b" json:"b"`
	Equal  bool   `csv:"equal" json:"equal"`
	Reason string `csv:"reason" json:"reason"`
	KeyA   string `csv:"key_a" json:"key_a"`
	KeyB   string `csv:"key_b" json:"key_b"`
}

// NewRow flattens r.
func NewRow(r *flights.Result) Row {
	return Row{
		A:      r.A,
		B:      r.B,
		Equal:  r.Equal,
		Reason: string(r.Reason),
		KeyA:   r.KeyA,
		KeyB:   r.KeyB,
	}
}

// FormatResult formats r as a single line of text.
// If explain is true, the deciding reason and the canonical keys are appended.
func FormatResult(r *flights.Result, explain bool) string {
	verdict := "not equal"
	if r.Equal {
		verdict = "equal"
	}
	line := fmt.Sprintf("Codes: %s and %s - %s", r.A, r.B, verdict)
	if !explain {
		return line + "\n"
	}

	if r.KeyA == "" && r.KeyB == "" {
		return fmt.Sprintf("%s (%s)\n", line, r.Reason)
	}
	op := "!="
	if r.Equal {
		op = "="
	}
	return fmt.Sprintf("%s (%s: %s %s %s)\n", line, r.Reason, r.KeyA, op, r.KeyB)
}

// Show writes a single result to w.
func Show(w io.Writer, r flights.Result, opt Options) error {
	return ShowAll(w, []flights.Result{r}, opt)
}

// ShowAll writes results to w in the requested format.
// CSV output always starts with a header row, even with no results.
func ShowAll(w io.Writer, results []flights.Result, opt Options) error {
	switch opt.Format {
	case FormatText, "":
		for i := range results {
			if _, err := fmt.Fprint(w, FormatResult(&results[i], opt.Explain)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		for i := range results {
			if err := enc.Encode(NewRow(&results[i])); err != nil {
				return fmt.Errorf("encoding json: %w", err)
			}
		}
		return nil
	case FormatCSV:
		return writeCSV(w, results)
	default:
		return fmt.Errorf("unknown output format %q", opt.Format)
	}
}

func writeCSV(w io.Writer, results []flights.Result) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(Row{}); err != nil {
		return fmt.Errorf("encoding csv header: %w", err)
	}
	for i := range results {
		if err := enc.Encode(NewRow(&results[i])); err != nil {
			return fmt.Errorf("encoding csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
