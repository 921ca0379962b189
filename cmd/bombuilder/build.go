package bombuilder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombuilder/pkg/core"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/ui"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			cfg, dir, err := opts.loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			logger.Info().
				Str("dir", dir).
				Str("graph", cfg.Graph.Path).
				Bool("dryRun", opts.dryRun).
				Msg("Starting build")

			result, err := core.GenerateBom(core.GenerateBomOptions{
				Config:  cfg,
				WorkDir: dir,
				DryRun:  opts.dryRun,
			})
			if err != nil {
				return err
			}

			if err := renderer.Render(ui.BuildSummary(result)); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, err)
			}
			return nil
		},
	}

	flags.bindScope(cmd.Flags())
	flags.bindBom(cmd.Flags())
	return cmd
}
