package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/suvat/internal/quantity"
	"github.com/san-kum/suvat/internal/storage"
)

// app carries the state shared by every command: flag values, the loaded
// settings and what PersistentPreRunE derives from them.
type app struct {
	dataDir string
	verbose bool
	strict  bool

	settings  *viper.Viper
	policy    quantity.Policy
	precision int
	logger    *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "suvat",
		Short:         "constant-acceleration kinematics workbench",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data", defaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "reject non-numeric input instead of reading it as 0")

	rootCmd.AddCommand(
		a.solveCmd(),
		a.deriveCmd(),
		a.checkCmd(),
		a.crossCmd(),
		a.runCmd(),
		a.sweepCmd(),
		a.approachCmd(),
		a.compareCmd(),
		a.searchCmd(),
		a.presetsCmd(),
		a.listCmd(),
		a.plotCmd(),
		a.phaseCmd(),
		a.exportCmd(),
		a.exportCSVCmd(),
		a.exportSVGCmd(),
		a.liveCmd(),
	)

	return rootCmd
}

// setup loads settings and configures logging and the conversion policy.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	a.settings = v
	a.dataDir = v.GetString(keyDataDir)

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	a.logger = slog.Default().With("component", "cli")

	a.policy, err = quantity.ParsePolicy(v.GetString(keyConversion))
	if err != nil {
		return fmt.Errorf("%s: %w", keyConversion, err)
	}
	if a.strict {
		a.policy = quantity.Strict
	}

	a.precision = v.GetInt(keyPrecision)

	a.logger.Debug("settings loaded",
		"data_dir", a.dataDir,
		"conversion", a.policy,
		"precision", a.precision,
		"config", v.ConfigFileUsed(),
	)
	return nil
}

func (a *app) store() *storage.Store {
	return storage.New(a.dataDir)
}

// format renders v with the configured number of significant digits.
func (a *app) format(v float64) string {
	return strconv.FormatFloat(v, 'g', a.precision, 64)
}
