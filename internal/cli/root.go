package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kode4food/timeline"
	"github.com/kode4food/timeline/internal/demo"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the timeline CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Run scripted scenarios against the interval timeline engine",
		Long: `Drive an interval timeline with scripted insertions and queries.

Every script runs against a fresh timeline in which at most one event is
active at any instant. Later insertions take priority, splitting whatever
they overlap.`,
	}

	cmd.PersistentFlags().BoolVarP(
		&opts.Verbose, "verbose", "v", false, "log engine activity to stderr",
	)

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

func (o *RootOptions) config(stderr io.Writer) timeline.Config {
	cfg := timeline.DefaultConfig()
	if o.Verbose {
		cfg.Logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		))
	}
	return cfg
}

func runScript(
	opts *RootOptions, script *demo.Script, cmd *cobra.Command,
) error {
	cfg := opts.config(cmd.ErrOrStderr())
	defer func() { _ = cfg.Logger.Sync() }()

	return demo.NewRunner(cmd.OutOrStdout(), cfg).Run(script)
}
