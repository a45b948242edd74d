// Package cli implements the fpidioms command tree.
package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fp "github.com/Pure-Company/fpidioms"
	"github.com/Pure-Company/fpidioms/internal/config"
	"github.com/Pure-Company/fpidioms/internal/logging"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is shared by every subcommand. It is filled in by the root command's
// PersistentPreRunE.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	runID   string
	quiet   bool
	written int64
}

// sink is the command's output. Quiet discards it; every byte is counted
// either way.
func (a *app) sink(cmd *cobra.Command) fp.WriteFunc {
	w := fp.NewWriter(cmd.OutOrStdout())
	if a.quiet {
		w = w.Empty()
	}
	return w.Tee(a.count)
}

func (a *app) count(p []byte) (int, error) {
	a.written += int64(len(p))
	return len(p), nil
}

// out is where demonstrations print. Each line is indented under the
// command's heading.
func (a *app) out(cmd *cobra.Command) fp.WriteFunc {
	return a.sink(cmd).Indent("  ")
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		debug     bool
		logFormat string
	)
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "fpidioms",
		Short:        "Run functional-programming idiom demonstrations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ParseEnv(nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
				Debug:  cfg.Debug,
				Format: cfg.LogFormat,
			})
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.runID = uuid.NewString()
			a.logger = logger.With(zap.String("run_id", a.runID))
			a.logger.Debug("command.start", zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.logger.Debug("command.done",
				zap.String("command", cmd.Name()),
				zap.Int64("bytes_written", a.written))
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", config.LogFormatConsole, "log format: console or json")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "discard demonstration output")

	cmd.AddCommand(
		newPointsCmd(a),
		newTradesCmd(a),
		newToolsCmd(a),
		newFilterCmd(a),
		newCurryCmd(a),
		newRailwayCmd(a),
		newOutParamCmd(a),
		newTailCallCmd(a),
	)
	return cmd
}

func heading(w io.Writer, title string) {
	_, _ = io.WriteString(w, title+":\n")
}
