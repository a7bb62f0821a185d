package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/flowgen/internal/export"
)

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Bold(true)
)

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return parsed, nil
}

func renderSummary(stats export.Stats, path string) string {
	return summaryStyle.Render(fmt.Sprintf(
		"Wrote %d rows across %d days to %s",
		stats.Rows, stats.Days, pathStyle.Render(path),
	))
}
