package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Writer emits the FLOW data-export CSV layout: a preamble with a placeholder
// summary block, then one detail row per generated entry.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps the destination stream in a CSV encoder.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WritePreamble writes the export header, the period row, and the summary
// block. The summary figures are always literal zeros; consumers of the
// fixture recompute them from the detail rows.
func (w *Writer) WritePreamble(start, end, generatedAt time.Time) error {
	rows := [][]string{
		{"FLOW Data Export", generatedAt.UTC().Format(time.RFC3339)},
		{"Period", fmt.Sprintf("%s - %s", start.Format("2006-01-02"), end.Format("2006-01-02"))},
		{},
		{"SUMMARY"},
		{"Total Sessions", "0"},
		{"Total Time", "0:00:00"},
		{"Unique Tasks", "0"},
		{"Average Session Time", "0:00:00"},
		{"Longest Session", "0:00:00"},
		{},
		{"DETAILED DATA"},
		{"Date", "Task", "Duration (sec)", "Duration (time)"},
	}

	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("write preamble row: %w", err)
		}
	}
	return nil
}

// WriteDay appends one detail row per entry in the record.
func (w *Writer) WriteDay(record DayRecord) error {
	date := record.Date.Format("2006-01-02")
	for _, entry := range record.Entries {
		row := []string{
			date,
			entry.Name,
			strconv.Itoa(entry.Seconds),
			FormatDuration(entry.Seconds),
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("write detail row: %w", err)
		}
	}
	return nil
}

// Flush drains buffered rows to the underlying stream.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// FormatDuration renders seconds as H:MM:SS with unpadded hours, e.g. 3723
// becomes "1:02:03".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}
