package bombuilder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombuilder/pkg/core"
	"github.com/arthur-debert/bombuilder/pkg/ui"
)

func newInspectCmd(opts *globalOptions) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := opts.loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := core.InspectGraph(core.InspectGraphOptions{
				Config:  cfg,
				WorkDir: dir,
			})
			if err != nil {
				return err
			}

			if err := renderer.Render(ui.InspectSummary(result)); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, err)
			}
			return nil
		},
	}

	flags.bindScope(cmd.Flags())
	return cmd
}
