package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/conorfennell/knoldue/internal/config"
	"github.com/conorfennell/knoldue/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status: 0 on success, 1 when the deck cannot
// be reported and 2 for usage or configuration errors.
func run(args []string, stdout, stderr io.Writer) int {
	// 1. Resolve configuration
	fs := config.NewFlagSet("knoldue")
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "knoldue: %v\n", err)
		return 2
	}

	// 2. Set up logging; stdout is reserved for the table
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	// 3. Print the report
	reporter := report.New(stdout, report.Config{
		Location:   cfg.Location(),
		TimeFormat: cfg.TimeFormat,
		Border:     report.Borders[cfg.Border],
		Logger:     logger,
	})
	if err := reporter.Run(cfg.File); err != nil {
		logger.Error("Failed to report due dates", "file", cfg.File, "error", err)
		return 1
	}
	return 0
}
