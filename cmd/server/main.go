/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the workday engine server, or runs a one-shot
  increment computation from the command line.

COMMANDS:
  serve       Start the HTTP server (default settings from config)
  increment   Compute one workday increment and print the result

STARTUP SEQUENCE (serve):
  1. Load YAML config (viper)
  2. Build zap logger (console, or rotating file via lumberjack)
  3. Open SQLite store
  4. Replay persisted window and holidays into a fresh engine
  5. Seed window/holidays from config where the store was empty
  6. Start chi server with graceful shutdown

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  workdayd serve --config ./config.yaml

  # One-shot computation, no server
  workdayd increment --start "2004-01-01 15:07" --workdays 0.25

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration schema
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/warp/workday-engine/api"
	"github.com/warp/workday-engine/config"
	"github.com/warp/workday-engine/store/sqlite"
	"github.com/warp/workday-engine/workday"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workdayd",
		Short: "Workday increment engine",
		Long:  "Computes calendar dates a fractional number of workdays away, respecting a daily work window, weekends, and holidays",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.AddCommand(serveCmd(), incrementCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SERVE
// =============================================================================

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err = initLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer logger.Sync()

			store, err := sqlite.New(cfg.Server.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer store.Close()

			engine := workday.NewEngine(logger)
			ctx := context.Background()
			if err := workday.Replay(ctx, store, engine); err != nil {
				return fmt.Errorf("failed to replay stored state: %w", err)
			}
			if err := seed(ctx, cfg, engine, store); err != nil {
				return fmt.Errorf("failed to seed from config: %w", err)
			}

			handler := api.NewHandler(engine, store)
			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
				Handler: api.NewRouter(handler),
			}

			// Graceful shutdown on SIGINT/SIGTERM
			done := make(chan os.Signal, 1)
			signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				logger.Info("server listening", zap.Int("port", cfg.Server.Port))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("server failed", zap.Error(err))
				}
			}()

			<-done
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}
			return nil
		},
	}
}

// seed applies config defaults that the store does not override: the
// window only when none was persisted, holidays always (registries
// are sets, duplicates are no-ops).
func seed(ctx context.Context, cfg *config.Config, engine *workday.Engine, store workday.Store) error {
	if _, configured := engine.WorkdayStart(); !configured && cfg.Workday.Start != "" {
		start, err := clockDate(cfg.Workday.Start)
		if err != nil {
			return fmt.Errorf("workday.start: %w", err)
		}
		stop, err := clockDate(cfg.Workday.Stop)
		if err != nil {
			return fmt.Errorf("workday.stop: %w", err)
		}
		engine.ConfigureWorkday(start, stop)
		if _, ok := engine.WorkdayStart(); ok {
			if err := store.SaveWindow(ctx, workday.WindowRecord{Start: start, Stop: stop}); err != nil {
				return err
			}
		}
	}

	for _, s := range cfg.Holidays.Dates {
		var y, m, d int
		if n, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); n != 3 || err != nil {
			return fmt.Errorf("holidays.dates: bad entry %q", s)
		}
		rec := workday.HolidayRecord{Date: workday.NewDate(y, m, d, 0, 0)}
		engine.RegisterHoliday(rec.Date)
		if err := store.SaveHoliday(ctx, rec); err != nil {
			return err
		}
	}
	for _, s := range cfg.Holidays.Recurring {
		var m, d int
		if n, err := fmt.Sscanf(s, "%d-%d", &m, &d); n != 2 || err != nil {
			return fmt.Errorf("holidays.recurring: bad entry %q", s)
		}
		rec := workday.HolidayRecord{Date: workday.NewDate(2000, m, d, 0, 0), Recurring: true}
		engine.RegisterRecurringHoliday(rec.Date)
		if err := store.SaveHoliday(ctx, rec); err != nil {
			return err
		}
	}
	for _, name := range cfg.Holidays.Presets {
		recs, err := api.PresetHolidays(name)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if rec.Recurring {
				engine.RegisterRecurringHoliday(rec.Date)
			} else {
				engine.RegisterHoliday(rec.Date)
			}
			if err := store.SaveHoliday(ctx, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// clockDate turns "HH:MM" into a Date on a fixed valid reference day;
// only the time-of-day feeds the window duration.
func clockDate(s string) (workday.Date, error) {
	var hh, mm int
	if n, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); n != 2 || err != nil {
		return workday.InvalidDate, fmt.Errorf("want HH:MM, got %q", s)
	}
	return workday.NewDate(2000, 1, 1, hh, mm), nil
}

// =============================================================================
// INCREMENT (one-shot)
// =============================================================================

func incrementCmd() *cobra.Command {
	var (
		start             string
		workdays          float64
		windowStart       string
		windowStop        string
		holidays          []string
		recurringHolidays []string
	)

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Compute one workday increment and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := workday.NewEngine(zap.NewNop())

			ws, err := clockDate(windowStart)
			if err != nil {
				return fmt.Errorf("--window-start: %w", err)
			}
			wt, err := clockDate(windowStop)
			if err != nil {
				return fmt.Errorf("--window-stop: %w", err)
			}
			engine.ConfigureWorkday(ws, wt)

			for _, s := range holidays {
				var y, m, d int
				if n, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); n != 3 || err != nil {
					return fmt.Errorf("--holiday: bad entry %q", s)
				}
				engine.RegisterHoliday(workday.NewDate(y, m, d, 0, 0))
			}
			for _, s := range recurringHolidays {
				var m, d int
				if n, err := fmt.Sscanf(s, "%d-%d", &m, &d); n != 2 || err != nil {
					return fmt.Errorf("--recurring-holiday: bad entry %q", s)
				}
				engine.RegisterRecurringHoliday(workday.NewDate(2000, m, d, 0, 0))
			}

			var y, m, d, hh, mm int
			if n, err := fmt.Sscanf(start, "%d-%d-%d %d:%d", &y, &m, &d, &hh, &mm); n != 5 || err != nil {
				return fmt.Errorf("--start: want \"YYYY-MM-DD HH:MM\", got %q", start)
			}

			result := engine.GetWorkdayIncrement(workday.NewDate(y, m, d, hh, mm), workdays)
			if result.IsInvalid() {
				return fmt.Errorf("increment could not be computed (invalid start date?)")
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date/time, \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().Float64Var(&workdays, "workdays", 0, "Fractional workdays to add (negative moves backward)")
	cmd.Flags().StringVar(&windowStart, "window-start", "08:00", "Workday start, HH:MM")
	cmd.Flags().StringVar(&windowStop, "window-stop", "16:00", "Workday stop, HH:MM")
	cmd.Flags().StringArrayVar(&holidays, "holiday", nil, "One-time holiday, YYYY-MM-DD (repeatable)")
	cmd.Flags().StringArrayVar(&recurringHolidays, "recurring-holiday", nil, "Recurring holiday, MM-DD (repeatable)")
	cmd.MarkFlagRequired("start")
	return cmd
}

// =============================================================================
// LOGGING
// =============================================================================

// initLogger builds a console logger, or a rotating file logger when
// log.file is set.
func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, err
		}
	}

	if cfg.File == "" {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		return zcfg.Build()
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		writer,
		level,
	)
	return zap.New(core), nil
}
