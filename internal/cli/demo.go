package cli

import (
	"github.com/spf13/cobra"

	"github.com/kode4food/timeline/internal/demo"
)

// NewDemoCommand creates the demo command
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in walkthrough",
		Long: `Run the built-in walkthrough: disjoint inserts, an overlapping
insert, a split, a multi-event span, point and range queries, and a
background schedule interrupted by a priority task.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			script, err := demo.DefaultScript()
			if err != nil {
				return err
			}
			return runScript(rootOpts, script, cmd)
		},
	}
}
