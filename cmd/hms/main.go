package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/narrate"
	"github.com/hms/hms/internal/platform/report"
	"github.com/hms/hms/internal/platform/stats"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Hospital management data core",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(backupCmd())
	rootCmd.AddCommand(restoreCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	return logger
}

func openDatabase(cfg *config.Config, logger zerolog.Logger) *db.DB {
	d, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	if err := d.EnsureSchema(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to create schema")
	}
	return d
}

func loadConfig(logger *zerolog.Logger) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	return cfg
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the database and print the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			boot := zerolog.New(os.Stdout).With().Timestamp().Logger()
			cfg := loadConfig(&boot)
			logger := newLogger(cfg)

			d := openDatabase(cfg, logger)
			defer d.Close()
			logger.Info().Str("path", cfg.DBPath).Msg("database ready")

			var narrator *narrate.Narrator
			if cfg.NarrationEnabled {
				narrator = narrate.New(narrate.LogSpeaker{Log: logger}, 8, logger)
				defer narrator.Close()
				narrator.Speak("Welcome to the hospital management system")
			}

			ctx := cmd.Context()
			now := time.Now()
			summary, err := stats.Load(ctx, d, now)
			if err != nil {
				return err
			}

			fmt.Printf("Patients:             %d\n", summary.TotalPatients)
			fmt.Printf("Doctors:              %d\n", summary.TotalDoctors)
			fmt.Printf("Today's appointments: %d\n", summary.TodaysAppointments)
			fmt.Printf("Pending bills:        %d\n", summary.PendingBills)

			months, err := stats.MonthlyBuckets(ctx, d, 6, stats.AppointmentsPerMonth, now)
			if err != nil {
				return err
			}
			fmt.Println("\nAppointments per month:")
			for _, m := range months {
				fmt.Printf("  %s  %.0f\n", m.Label, m.Value)
			}

			revenue, err := stats.MonthlyBuckets(ctx, d, 6, stats.PaidRevenuePerMonth, now)
			if err != nil {
				return err
			}
			fmt.Println("\nPaid revenue per month:")
			for _, m := range revenue {
				fmt.Printf("  %s  %.2f\n", m.Label, m.Value)
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report, optionally exporting it to PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("type")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			status, _ := cmd.Flags().GetString("status")
			out, _ := cmd.Flags().GetString("out")

			boot := zerolog.New(os.Stdout).With().Timestamp().Logger()
			cfg := loadConfig(&boot)
			logger := newLogger(cfg)

			d := openDatabase(cfg, logger)
			defer d.Close()
			ctx := cmd.Context()

			var (
				r   *report.Report
				err error
			)
			switch kind {
			case "appointments":
				r, err = report.Appointments(ctx, d, report.AppointmentFilter{
					From: from, To: to, Status: status,
				})
			case "patients":
				r, err = report.PatientList(ctx, d)
			case "doctors":
				r, err = report.DoctorList(ctx, d)
			case "billing":
				r, err = report.BillingSummary(ctx, d)
			default:
				return fmt.Errorf("unknown report type %q (appointments, patients, doctors, billing)", kind)
			}
			if err != nil {
				return err
			}

			printReport(r)

			if out != "" {
				if err := report.ExportPDF(r, out); err != nil {
					return err
				}
				logger.Info().Str("path", out).Msg("report exported")
			}
			return nil
		},
	}
	cmd.Flags().String("type", "appointments", "Report type: appointments, patients, doctors, billing")
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD), appointments only")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD), appointments only")
	cmd.Flags().String("status", "", "Status filter, appointments only")
	cmd.Flags().String("out", "", "PDF output path")
	return cmd
}

func printReport(r *report.Report) {
	fmt.Printf("%s  (generated %s)\n", r.Title, r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Println(strings.Join(r.Columns, " | "))
	for _, row := range r.Rows {
		fmt.Println(strings.Join(row, " | "))
	}
}

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <destination>",
		Short: "Back up the database to a new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boot := zerolog.New(os.Stdout).With().Timestamp().Logger()
			cfg := loadConfig(&boot)
			logger := newLogger(cfg)

			d, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.Backup(cmd.Context(), args[0]); err != nil {
				return err
			}
			logger.Info().Str("path", args[0]).Msg("backup complete")
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <source>",
		Short: "Replace the database with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boot := zerolog.New(os.Stdout).With().Timestamp().Logger()
			cfg := loadConfig(&boot)
			logger := newLogger(cfg)

			d, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}

			if err := d.Restore(args[0]); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.DBPath).
				Msg("restore complete; restart any running instance before use")
			return nil
		},
	}
}
