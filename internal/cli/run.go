package cli

import (
	"github.com/spf13/cobra"

	"github.com/kode4food/timeline/internal/demo"
)

// NewRunCommand creates the run command
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script",
		Long: `Run a YAML script against a fresh timeline.

Example:
  timeline run ./schedule.yaml
  timeline run ./schedule.yaml --verbose`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := demo.LoadScript(args[0])
			if err != nil {
				return err
			}
			return runScript(rootOpts, script, cmd)
		},
	}
}
