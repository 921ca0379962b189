package bombuilder

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombuilder/internal/version"
	"github.com/arthur-debert/bombuilder/pkg/config"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/ui"
)

// globalOptions are the persistent flags shared by all commands.
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	dir        string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "bombuilder",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// workDir returns --dir or the process working directory.
func (o *globalOptions) workDir() (string, error) {
	if o.dir != "" {
		return o.dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(MsgErrWorkDir, err)
	}
	return wd, nil
}

// loadConfig merges every config layer, with changed flags on top.
func (o *globalOptions) loadConfig(cmd *cobra.Command, flags *configFlags) (*config.Config, string, error) {
	dir, err := o.workDir()
	if err != nil {
		return nil, "", err
	}
	overrides, err := flags.overrides(cmd)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		WorkDir:    dir,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}

func (o *globalOptions) renderer(cmd *cobra.Command) (*ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrBadFormat, err)
	}
	return ui.NewRenderer(format, cmd.OutOrStdout()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info(cmd.Root().Name()))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
