package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"railsim/internal/engine"
	"railsim/internal/infrastructure/storage"
	"railsim/internal/version"
	"railsim/pkg/api"
	"railsim/pkg/logger"
)

func init() {
	logger.Init()
}

// options - разобранные флаги командной строки
type options struct {
	input    string
	mode     engine.Mode
	json     bool
	snapshot bool
}

func main() {
	// 1. Конфигурация: окружение, поверх него флаги
	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Bad configuration: ", err)
	}

	var opts options
	var mode string
	flag.StringVar(&opts.input, "input", storage.StdinPath, "Path to the track layout ('-' for stdin)")
	flag.StringVar(&mode, "mode", "both", "Query to run: first, last or both")
	flag.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "Tick ceiling per query (0 for none)")
	flag.StringVar(&cfg.JournalDir, "journal", cfg.JournalDir, "Directory for the collision journal (empty to skip)")
	flag.BoolVar(&opts.json, "json", false, "Print the report as JSON")
	flag.BoolVar(&opts.snapshot, "snapshot", false, "Print the final grid snapshot")
	flag.Parse()

	var ok bool
	if opts.mode, ok = engine.ParseMode(mode); !ok {
		logger.Log.Fatalf("Unknown mode %q (want first, last or both)", mode)
	}
	if cfg.MaxTicks < 0 {
		logger.Log.Fatal("-max-ticks must not be negative")
	}

	logger.Log.Debug(version.String())

	// 2. Раскладка
	grid, err := storage.LoadLayout(opts.input)
	if err != nil {
		logger.Log.Fatal("Failed to load layout: ", err)
	}

	// 3. Симуляция
	// Запросы независимы: печатаем то, что получилось, и только потом выходим с ошибкой.
	report, runErr := engine.Run(grid, cfg, opts.mode)
	if runErr != nil {
		logger.Log.WithField("run_id", report.RunID.String()).Error("Simulation failed: ", runErr)
	}
	if !report.HasResults() {
		os.Exit(1)
	}

	// 4. Журнал
	if cfg.JournalDir != "" {
		svc, err := storage.NewJournalService(cfg.JournalDir)
		if err != nil {
			logger.Log.Fatal("Journal unavailable: ", err)
		}
		path, err := svc.Save(report.Journal())
		if err != nil {
			logger.Log.Fatal("Failed to save journal: ", err)
		}
		logger.Log.WithField("path", path).Info("Collision journal saved")
	}

	// 5. Вывод
	if err := printReport(os.Stdout, report, opts); err != nil {
		logger.Log.Fatal("Failed to print report: ", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func printReport(w io.Writer, report *engine.Report, opts options) error {
	if opts.json {
		dto := toDTO(report, opts.snapshot)
		if err := dto.Validate(); err != nil {
			return fmt.Errorf("invalid report: %w", err)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto)
	}

	if report.FirstCollision != nil {
		if _, err := fmt.Fprintf(w, "First collision: %s\n", report.FirstCollision.Pos); err != nil {
			return err
		}
	}
	if report.LastCart != nil {
		if _, err := fmt.Fprintf(w, "Last cart: %s\n", report.LastCart); err != nil {
			return err
		}
	}
	if opts.snapshot && report.Final != nil {
		if _, err := fmt.Fprint(w, report.Final.String()); err != nil {
			return err
		}
	}
	return nil
}

func toDTO(report *engine.Report, snapshot bool) api.RunReport {
	dto := api.RunReport{
		RunID:        report.RunID.String(),
		Grid:         api.GridMeta{Width: report.Cols, Height: report.Rows},
		InitialCarts: report.InitialCarts,
		Ticks:        report.Ticks,
		Collisions:   make([]api.CollisionView, 0, len(report.Collisions)),
	}
	for _, err := range []error{report.FirstErr, report.LastErr} {
		if err != nil {
			dto.Errors = append(dto.Errors, err.Error())
		}
	}
	if report.FirstCollision != nil {
		c := api.NewCollisionView(*report.FirstCollision)
		dto.FirstCollision = &c
	}
	if report.LastCart != nil {
		p := api.NewPositionView(*report.LastCart)
		dto.LastCart = &p
	}
	for _, c := range report.Collisions {
		dto.Collisions = append(dto.Collisions, api.NewCollisionView(c))
	}
	if snapshot && report.Final != nil {
		dto.Snapshot = report.Final.String()
	}
	return dto
}
