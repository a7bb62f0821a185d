package export

import (
	"context"
	"io"
	"time"
)

// Options configure a single export run.
type Options struct {
	Start time.Time
	End   time.Time
	Seed  int64

	// Now stamps the export header. Zero means the current wall-clock time.
	Now time.Time
}

// Run writes a complete export to w: the preamble first, then every date from
// Start through End inclusive. Days are generated and flushed one at a time,
// so an abort mid-range leaves the rows written so far in place. An End
// before Start yields a preamble-only export.
func Run(ctx context.Context, w io.Writer, opts Options) (Stats, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	out := NewWriter(w)
	if err := out.WritePreamble(opts.Start, opts.End, now); err != nil {
		return Stats{}, err
	}

	gen := NewGenerator(opts.Seed)
	stats := Stats{}
	for date := opts.Start; !date.After(opts.End); date = date.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			out.Flush()
			return stats, err
		}

		record, err := gen.Day(date)
		if err != nil {
			out.Flush()
			return stats, err
		}
		if err := out.WriteDay(record); err != nil {
			return stats, err
		}

		stats.Days++
		stats.Rows += len(record.Entries)
	}

	return stats, out.Flush()
}
