// Package report serializes verdicts and aggregates batch statistics.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/optimode/mailprobe"
	"github.com/optimode/mailprobe/types"
)

// Summary aggregates one batch run.
type Summary struct {
	Total      int   `json:"total"`
	Valid      int   `json:"valid"`
	Invalid    int   `json:"invalid"`
	Unknown    int   `json:"unknown"`
	DurationMs int64 `json:"duration_ms"`
}

// Summarize counts verdicts by overall status.
func Summarize(verdicts []mailprobe.Verdict, elapsed time.Duration) Summary {
	s := Summary{Total: len(verdicts), DurationMs: elapsed.Milliseconds()}
	for _, v := range verdicts {
		switch v.EmailStatus {
		case types.StatusValid:
			s.Valid++
		case types.StatusInvalid:
			s.Invalid++
		default:
			s.Unknown++
		}
	}
	return s
}

// Encode writes the verdicts as a pretty-printed JSON array. This is
// the persisted report schema.
func Encode(w io.Writer, verdicts []mailprobe.Verdict) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(verdicts)
}

// WriteFile writes the JSON report to path, creating the parent
// directory as needed.
func WriteFile(path string, verdicts []mailprobe.Verdict) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, verdicts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// PrintResultsTable prints a human-readable table of per-address
// verdicts.
func PrintResultsTable(w io.Writer, verdicts []mailprobe.Verdict) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "EMAIL\tSTATUS\tFORMAT\tMAILBOX\tDOMAIN\tMESSAGE")
	for _, v := range verdicts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Email,
			v.EmailStatus,
			v.Format,
			v.MailboxStatus,
			dashIfEmpty(v.Domain),
			v.Message,
		)
	}

	tw.Flush()
}

// PrintSummary prints the aggregated batch stats.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total addresses:  %d\n", s.Total)
	fmt.Fprintf(w, "  Valid:            %d\n", s.Valid)
	fmt.Fprintf(w, "  Invalid:          %d\n", s.Invalid)
	fmt.Fprintf(w, "  Unknown:          %d\n", s.Unknown)
	fmt.Fprintf(w, "  Batch time:       %.2f s\n", float64(s.DurationMs)/1000.0)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
