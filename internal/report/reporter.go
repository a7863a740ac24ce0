// Package report loads a flashcard deck, orders it by next review and
// prints the due dates as a table.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Config holds the settings a Reporter renders with. Zero values fall back
// to the process local zone, DefaultTimeFormat, the ASCII border and
// slog.Default.
type Config struct {
	Location   *time.Location
	TimeFormat string
	Border     lipgloss.Border
	Logger     *slog.Logger
}

// Reporter prints the due-date table for a deck.
type Reporter struct {
	out    io.Writer
	loc    *time.Location
	layout string
	border lipgloss.Border
	logger *slog.Logger
}

// New creates a Reporter that writes to out.
func New(out io.Writer, cfg Config) *Reporter {
	r := &Reporter{
		out:    out,
		loc:    cfg.Location,
		layout: cfg.TimeFormat,
		border: cfg.Border,
		logger: cfg.Logger,
	}
	if r.loc == nil {
		r.loc = time.Local
	}
	if r.layout == "" {
		r.layout = DefaultTimeFormat
	}
	if r.border == (lipgloss.Border{}) {
		r.border = lipgloss.ASCIIBorder()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run loads the deck at path and prints its table. Nothing is written
// unless every record loads, sorts and formats.
func (r *Reporter) Run(path string) error {
	records, err := Load(path)
	if err != nil {
		return err
	}
	r.logger.Debug("Loaded flashcards", "path", path, "source", sourceKind(path), "count", len(records))

	sorted, err := Sort(records)
	if err != nil {
		return err
	}

	rows, err := r.Format(sorted)
	if err != nil {
		return err
	}

	tbl := Render(rows, r.border)
	if _, err := fmt.Fprintln(r.out, tbl); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	r.logger.Debug("Rendered table", "rows", len(rows), "location", r.loc.String())
	return nil
}
