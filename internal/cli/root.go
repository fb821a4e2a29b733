// Package cli implements timelinectl, the command line companion of the
// master: it mints tokens, seeds schedules, submits intents and follows a
// day live from a terminal.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// Config is read from TIMELINE_* variables; flags take precedence.
type Config struct {
	Addr       string `envconfig:"ADDR" default:"localhost:50051"`
	Token      string `envconfig:"TOKEN"`
	ScheduleID string `envconfig:"SCHEDULE"`
	JWTSecret  string `envconfig:"JWT_SECRET"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"WARN"`
	// TIMELINE_COLOURS enables colorized output
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("timeline", &cfg)
	return cfg, err
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config
	Format string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) Logger() *slog.Logger {
	return logs.GetLoggerFromString(o.LogLevel)
}

// NewRootCommand creates the root command of timelinectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cfg, err := LoadConfig()
	if err == nil {
		opts.Config = cfg
	}

	cmd := &cobra.Command{
		Use:   "timelinectl",
		Short: "timelinectl - drive a live schedule day",
		Long:  "Submit intents to a timeline master and follow a schedule day as it happens.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err != nil {
				return fmt.Errorf("invalid TIMELINE_* environment: %w", err)
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", opts.Addr, "master gRPC address")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", opts.Token, "bearer token of the acting actor")
	cmd.PersistentFlags().StringVarP(&opts.ScheduleID, "schedule", "s", opts.ScheduleID, "schedule id")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Colours, "colours", opts.Colours, "colorized output")

	// Add subcommands
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewJournalCommand(opts))
	cmd.AddCommand(NewSnapshotCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewIntentCommands(opts)...)

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) requireSchedule() error {
	if o.ScheduleID == "" {
		return fmt.Errorf("a schedule id is required (--schedule or TIMELINE_SCHEDULE)")
	}
	return nil
}
