package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"inscripcli/internal/config"
	"inscripcli/internal/dataprocessing"
	apperrors "inscripcli/internal/errors"
	"inscripcli/internal/exporter"
	"inscripcli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input enrollment csv file (required)")
	out := flag.String("out", "", "output directory (defaults to configured exports dir)")
	format := flag.String("format", "csv", "csv | xlsx")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: enrollcsv -in <file.csv> [-out <dir>] [-format csv|xlsx]")
		os.Exit(2)
	}
	if *format != "csv" && *format != "xlsx" {
		fmt.Fprintf(os.Stderr, "unsupported format: %s\n", *format)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Output:   "console",
				FilePath: "logs/enrollcsv.log",
			},
			Paths: config.PathsConfig{
				DataDir:    "data",
				ExportsDir: "data/exports",
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *out == "" {
		*out = cfg.Paths.ExportsDir
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		logger.Error("Cannot create output directory",
			slog.String("path", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	// One trace id for the whole run so the log lines correlate.
	ctx := infrastructure.EnsureTraceID(context.Background())
	logger.InfoContext(ctx, "Starting enrollment extraction",
		slog.String("input", *in),
		slog.String("output_dir", *out),
		slog.String("format", *format))

	data, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("Cannot read input file",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	records := dataprocessing.IngestText(ctx, logger, string(data))
	if len(records) == 0 {
		perr := apperrors.NewParsingError("input yielded no enrollment records", nil)
		logger.Error("Ingestion failed",
			slog.String("path", *in),
			slog.String("error", perr.Error()))
		os.Exit(1)
	}

	stats := dataprocessing.Aggregate(records)
	logger.InfoContext(ctx, "Classification complete",
		slog.Int("records", stats.Total),
		slog.Int("activities", len(stats.ByActividad)))

	stamp := time.Now().Format("20060102_150405")

	switch *format {
	case "csv":
		recordsPath := filepath.Join(*out, fmt.Sprintf("inscripciones_%s.csv", stamp))
		if err := writeFile(recordsPath, func(f *os.File) error {
			return exporter.WriteRecordsCSV(f, records)
		}); err != nil {
			logger.Error("Cannot write records csv", slog.String("error", err.Error()))
			os.Exit(1)
		}

		statsPath := filepath.Join(*out, fmt.Sprintf("resumen_%s.csv", stamp))
		if err := writeFile(statsPath, func(f *os.File) error {
			return exporter.WriteStatsCSV(f, stats)
		}); err != nil {
			logger.Error("Cannot write summary csv", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.InfoContext(ctx, "Export complete",
			slog.String("records", recordsPath),
			slog.String("summary", statsPath))

	case "xlsx":
		path := filepath.Join(*out, fmt.Sprintf("inscripciones_%s.xlsx", stamp))
		if err := writeFile(path, func(f *os.File) error {
			return exporter.WriteRecordsXLSX(f, records, stats)
		}); err != nil {
			logger.Error("Cannot write xlsx", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.InfoContext(ctx, "Export complete", slog.String("path", path))
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("cannot create export file", err).WithContext("path", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return apperrors.NewStorageError("cannot write export file", err).WithContext("path", path)
	}
	return f.Close()
}
