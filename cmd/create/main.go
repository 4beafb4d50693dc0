package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/anrid/africa-aid-stats/pkg/config"
	"github.com/anrid/africa-aid-stats/pkg/logging"
	"github.com/anrid/africa-aid-stats/pkg/report"
	"github.com/anrid/africa-aid-stats/pkg/stats"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	aid := flag.String("aid", "", "aid received per person table (csv, xlsx or xls)")
	income := flag.String("income", "", "income per person table (csv, xlsx or xls)")
	out := flag.String("out", "", "output directory")
	policy := flag.String("policy", "", "what to do with countries without data: error, drop or global")
	focus := flag.String("focus", "", "comma separated countries of interest (default: top and bottom ranked)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *aid != "" {
		cfg.Inputs.Aid = *aid
	}
	if *income != "" {
		cfg.Inputs.Income = *income
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}
	if *policy != "" {
		cfg.Impute.Policy = *policy
	}
	if *focus != "" {
		cfg.Analysis.Focus = strings.Split(*focus, ",")
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Run failed", "error", err, "type", string(stats.TypeOf(err)))
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	opts, err := cfg.PipelineOptions()
	if err != nil {
		return err
	}

	res, err := stats.NewPipeline(opts, logger).Run(ctx)
	if err != nil {
		return err
	}

	if err := res.Save(cfg.SnapshotPath()); err != nil {
		return err
	}
	logger.Info("Saved results", "path", cfg.SnapshotPath())

	if path := cfg.WorkbookPath(); path != "" {
		if err := report.WriteWorkbook(path, res); err != nil {
			return err
		}
		logger.Info("Saved workbook", "path", path)
	}

	res.Info(os.Stdout)
	return nil
}
