// Package cli wires the orchestrator's cobra commands (init, start),
// grounded on the teacher's oracle/cmd package: a persistent --home flag,
// config under <home>/.orchestrator/config.toml, and human-friendly
// console logging on the command line. The running daemon gets its own
// cosmossdk.io/log logger at info level on stdout, built by the start
// command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	homeBase string
	rootCmd  = &cobra.Command{
		Use:   "orchestrator",
		Short: "Gravity Bridge orchestrator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			if strings.TrimSpace(homeBase) == "" {
				return fmt.Errorf("--home must not be empty")
			}
			return nil
		},
	}
)

func init() {
	userHome, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	rootCmd.PersistentFlags().StringVar(&homeBase, "home", userHome, "base directory for the orchestrator (config will be under <home>/.orchestrator)")
}

func homeDir() string {
	return filepath.Join(homeBase, ".orchestrator")
}

func configFilePath() string {
	return filepath.Join(homeDir(), "config.toml")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("failed to execute command")
		return err
	}
	return nil
}
