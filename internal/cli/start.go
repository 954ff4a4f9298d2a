package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/orchestrator"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the orchestrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		// Require init first: do not create homeDir implicitly on start.
		if st, err := os.Stat(homeDir()); err != nil || !st.IsDir() {
			return fmt.Errorf("home directory not initialized at %s (run `orchestrator init` first)", homeDir())
		}

		cfgPath := configFilePath()
		cfg, err := config.LoadFile(cfgPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("config not found at %s (run `orchestrator init` first)", cfgPath)
			}
			return fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
		}

		// If the native keyring backend uses a filesystem directory, ensure
		// it exists before starting, same check the teacher's start command
		// runs before daemon.New.
		backend := cfg.Keys.NativeDelegate.KeyringBackend
		if (backend == "test" || backend == "file") && cfg.Keys.NativeDelegate.KeyringDir != "" {
			if st, err := os.Stat(cfg.Keys.NativeDelegate.KeyringDir); err != nil || !st.IsDir() {
				return fmt.Errorf("keyring directory not found at %s (backend=%s); add the delegate key first, then run `orchestrator start` again",
					cfg.Keys.NativeDelegate.KeyringDir, backend)
			}
		}

		zlog.Info().Str("home", homeDir()).Msg("starting orchestrator")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := log.NewLogger(os.Stdout, log.LevelOption(zerolog.InfoLevel))

		orch, err := orchestrator.New(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to build orchestrator: %w", err)
		}
		defer orch.Close()

		runErr := make(chan error, 1)
		go func() { runErr <- orch.Run(ctx) }()

		select {
		case <-ctx.Done():
			zlog.Info().Msg("shutdown signal received")
			<-runErr
			return nil
		case err := <-runErr:
			if err != nil {
				return fmt.Errorf("orchestrator stopped: %w", err)
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
