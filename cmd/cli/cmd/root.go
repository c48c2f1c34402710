package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/telemetry-codec/internal/commands"
	"github.com/telemetry-codec/pkg/config"
	"github.com/telemetry-codec/pkg/telemetry"
	"github.com/telemetry-codec/pkg/utils"
)

var (
	// Global flags
	verbose bool
	cfgFile string

	logger            utils.Logger
	cfg               *config.Config
	telemetryShutdown telemetry.ShutdownFunc
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "telemetry-codec",
	Short: "A Huffman code generator for telemetry command strings",
	Long: `telemetry-codec derives a character-level Huffman code from a fixed set
of telemetry command strings and encodes each command into a variable-length
bit sequence.

The report command prints the per-character code table, every command's
encoded bits, and whether each command fits the target bit budget. The encode
command encodes arbitrary strings against a command set's code table.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		logLevel := utils.ParseLogLevel(cfg.Log.Level)
		if verbose {
			logLevel = utils.LevelDebug
		}
		if cfg.Log.OutputPath != "" {
			logger, err = utils.NewFileLogger(logLevel, cfg.Log.OutputPath)
			if err != nil {
				return err
			}
		} else {
			logger = utils.NewDefaultLogger(logLevel, os.Stdout)
		}

		telemetryShutdown, err = telemetry.Init(cmd.Context())
		if err != nil {
			logger.Warn("failed to initialize telemetry: %v", err)
			telemetryShutdown = nil
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(cmd.Context())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file path")

	binName := BinName()
	rootCmd.Example = `  # Report the code table for the built-in command set
  ` + binName + ` report

  # Report a custom command file against a 24-bit budget
  ` + binName + ` report -f commands.txt --target-bits 24

  # Encode strings against the built-in set's code table
  ` + binName + ` encode Pltog lcKi`
}

// GetLogger returns the configured logger
func GetLogger() utils.Logger {
	return logger
}

// BinName returns the base name of the current executable
func BinName() string {
	return filepath.Base(os.Args[0])
}

// loadSet loads the command set named by the flag, falling back to the
// config file setting and then the built-in set.
func loadSet(commandFile string) (*commands.Set, error) {
	path := commandFile
	if path == "" && cfg != nil {
		path = cfg.Codec.CommandFile
	}
	if path == "" {
		return commands.Builtin(), nil
	}
	return commands.Load(path)
}
