package pngico

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/pngico/internal/version"
	"github.com/arthur-debert/pngico/pkg/cobrax/topics"
	"github.com/arthur-debert/pngico/pkg/config"
	"github.com/arthur-debert/pngico/pkg/convert"
	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/logging"
	"github.com/arthur-debert/pngico/pkg/paths"
	"github.com/arthur-debert/pngico/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globalFlags are shared by the root command and its subcommands
type globalFlags struct {
	verbosity  int
	configFile string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		global    globalFlags
		convertTo string
		output    string
		overwrite bool
	)

	rootCmd := &cobra.Command{
		Use:     "pngico [flags] <input>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := paths.ParseMode(convertTo)
			if err != nil {
				return errors.Wrap(err, errors.ErrConfig, MsgErrMode)
			}
			return runConvert(cmd, global, paths.Request{
				Input:     args[0],
				Output:    output,
				Mode:      mode,
				Overwrite: overwrite,
			})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&global.format, "format", "auto", MsgFlagFormat)

	// Conversion flags
	rootCmd.Flags().StringVarP(&convertTo, "convert", "c", paths.ModeAuto.String(), MsgFlagConvert)
	rootCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "O", false, MsgFlagOverwrite)

	_ = rootCmd.RegisterFlagCompletionFunc("convert", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "ico", "png"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(&global))

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds "help <topic>" for the embedded documentation
func installTopics(rootCmd *cobra.Command) {
	logger := logging.GetLogger("cmd.topics")

	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		logger.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	tm, err := topics.New(sub, topics.Options{Renderer: topics.NewRenderer()})
	if err != nil {
		logger.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	tm.Install(rootCmd)
}

// loadConfig builds the configuration, letting an explicit --format win
// over every other source
func loadConfig(cmd *cobra.Command, global globalFlags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = global.format
	}
	return config.Load(config.LoadOptions{
		File:      global.configFile,
		Overrides: overrides,
	})
}

func runConvert(cmd *cobra.Command, global globalFlags, req paths.Request) error {
	logger := logging.GetLogger("cmd.convert")

	cfg, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, MsgErrFormat)
	}
	reporter, err := ui.NewReporter(format, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, MsgErrFormat)
	}

	fsys := filesystem.NewOS()
	plan, err := paths.Resolve(fsys, req)
	if err != nil {
		return err
	}

	logger.Info().
		Str("mode", plan.Mode.String()).
		Str("input", plan.Input).
		Str("output", plan.Output).
		Bool("replacing", plan.Replacing).
		Msg("Starting conversion")

	n, err := convert.Run(fsys, plan, cfg, reporter)
	if err != nil {
		return err
	}

	logger.Info().Int("images", n).Msg("Conversion finished")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newConfigCmd(global *globalFlags) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				fmt.Fprintln(cmd.OutOrStdout(), config.UserConfigDir())
				return nil
			}

			cfg, err := loadConfig(cmd, *global)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrDump)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagConfigPath)
	return cmd
}
