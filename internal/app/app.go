package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ciricc/countstats/internal/config"
	"github.com/ciricc/countstats/internal/input"
	"github.com/ciricc/countstats/internal/monitor"
	"github.com/ciricc/countstats/internal/report"
	"github.com/ciricc/countstats/internal/service/aggregate_svc"
	"github.com/ciricc/countstats/pkg/benchreport"
)

// Application runs one aggregation: read all rows, fold them, write all
// reports. It is not reusable once Run has been called.
type Application struct {
	Config       config.Config
	Log          *slog.Logger
	progress     monitor.ProgressMonitor
	aggregateSvc aggregate_svc.AggregateService
}

func New(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, os.Stdout)
}

func NewWithConfig(cfg config.Config, logOut io.Writer) (*Application, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: level,
	}))

	progress := monitor.NewCounterProgressMonitor()

	svc := aggregate_svc.NewAggregateService(
		log,
		progress,
	)

	return &Application{
		Config:       cfg,
		Log:          log,
		progress:     progress,
		aggregateSvc: svc,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	a.Log.InfoContext(ctx, "Reading...", "path", a.Config.Input.Path)
	if err := a.read(ctx); err != nil {
		return err
	}

	a.Log.InfoContext(ctx, "Writing...")
	reports := report.Build(
		a.aggregateSvc.SizeSpineAggregates(),
		a.aggregateSvc.SpineAggregates(),
	)

	out := a.Config.Output
	outputs := []struct {
		path  string
		write func(w io.Writer) error
	}{
		{out.Summary, func(w io.Writer) error { return report.WriteSummary(w, reports.Summary) }},
		{out.DPTime, func(w io.Writer) error { return report.WriteRuntime(w, report.DPTimeHeader, reports.DPTime) }},
		{out.DPYesTime, func(w io.Writer) error { return report.WriteRuntime(w, report.DPTimeHeader, reports.DPYesTime) }},
		{out.DFSTime, func(w io.Writer) error { return report.WriteRuntime(w, report.DFSTimeHeader, reports.DFSTime) }},
		{out.BFSTime, func(w io.Writer) error { return report.WriteRuntime(w, report.BFSTimeHeader, reports.BFSTime) }},
		{out.Accuracy, func(w io.Writer) error { return report.WriteAccuracy(w, reports.Accuracy) }},
	}
	for _, o := range outputs {
		if err := report.WriteFile(o.path, o.write); err != nil {
			return err
		}
		a.progress.ReportWritten()
		a.Log.DebugContext(ctx, "Wrote report", "path", o.path)
	}

	m := a.progress.GetMetrics()
	a.Log.InfoContext(ctx, "Finished.",
		"rows", m.RowsRead,
		"instances", m.InstancesFolded,
		"reports", m.ReportsWritten)
	return nil
}

func (a *Application) read(ctx context.Context) error {
	path := a.Config.Input.Path
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open stats: %w", err)
	}
	defer f.Close()

	r := input.NewReader(f, input.WithHeuristicName(a.Config.Input.Heuristic))
	if err := r.Each(func(row benchreport.MeasurementRow) error {
		return a.aggregateSvc.Ingest(ctx, row)
	}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := a.aggregateSvc.Finalize(ctx); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
