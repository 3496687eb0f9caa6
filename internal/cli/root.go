// Package cli wires the cobra command tree: the three game screens plus
// the shared config and logging setup.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moongate-games/sanctum/internal/api"
	"github.com/moongate-games/sanctum/internal/config"
	"github.com/moongate-games/sanctum/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the sanctum client.
// It wires up config loading, logging, and the screen subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult logging.Result

	cmd := &cobra.Command{
		Use:     "sanctum",
		Short:   "Sanctum terminal game client",
		Long:    "Sanctum: explore dungeons, raise monsters, and manage your home base from the terminal",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			config.SetGlobal(cfg)

			logResult = setupLogging(cmd, cfg)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logResult.Close()
		},
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.sanctum/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("server", "", "game server URL (overrides config)")

	cmd.AddCommand(newHomeCmd(), newDungeonCmd(), newSanctuaryCmd())

	return cmd
}

// setupLogging builds the root logger from config plus CLI flags and stores
// the CLI component logger.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		logCfg.Level = "debug"
		logCfg.File = ""
	}

	result := logging.New(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")
	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return result
}

// newClient builds the API client from config and flags.
func newClient(cmd *cobra.Command) *api.Client {
	cfg := config.Global()

	serverURL := cfg.Server.URL
	if flagURL, _ := cmd.Flags().GetString("server"); flagURL != "" {
		serverURL = flagURL
	}

	return api.NewClient(serverURL, cfg.Server.Timeout(),
		logging.ComponentLogger(logger, "api"))
}

const rootCmdExample = `  # Open the monster sanctuary
  sanctum sanctuary

  # Browse the dungeon run chronicle
  sanctum dungeon

  # Check on the home base and expeditions
  sanctum home

  # Print a roster page without the TUI
  sanctum sanctuary --plain --page 2 --page-size 20 --sort level:desc`
