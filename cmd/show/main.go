package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/anrid/africa-aid-stats/pkg/chart"
	"github.com/anrid/africa-aid-stats/pkg/config"
	"github.com/anrid/africa-aid-stats/pkg/logging"
	"github.com/anrid/africa-aid-stats/pkg/report"
	"github.com/anrid/africa-aid-stats/pkg/stats"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	out := flag.String("out", "", "output directory holding the results")
	noCharts := flag.Bool("no-charts", false, "skip rendering charts")
	dump := flag.Bool("dump", false, "dump the loaded results structure")
	asJSON := flag.Bool("json", false, "with -dump, print the full results as JSON")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	res, found, err := stats.LoadIfExists(cfg.SnapshotPath())
	if err != nil {
		logger.Error("Failed to load results", "error", err)
		closeLog()
		os.Exit(1)
	}
	if !found {
		logger.Error("No results found, run the create command in `cmd/create` first.", "path", cfg.SnapshotPath())
		closeLog()
		os.Exit(1)
	}

	res.Info(os.Stdout)

	if *dump {
		if err := dumpResults(os.Stdout, res, *asJSON); err != nil {
			logger.Error("Failed to dump results", "error", err)
			closeLog()
			os.Exit(1)
		}
	}

	report.Print(os.Stdout, res)

	if cfg.Output.Charts && !*noCharts {
		written, err := chart.RenderResults(res, cfg.ChartPath)
		if err != nil {
			logger.Error("Failed to render charts", "error", err)
			closeLog()
			os.Exit(1)
		}
		logger.Info("Rendered charts", "files", written)
	}
}

func dumpResults(w io.Writer, res *stats.Results, asJSON bool) error {
	if asJSON {
		return stats.Dump(w, res)
	}
	spew.Fdump(w, res.Ranking, res.Focus, res.Insights)
	return nil
}
