// Package main is the entry point for the melee combat CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-melee/internal/config"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

var (
	cfg       *config.Config
	redisAddr string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "melee",
	Short:         "Melee round combat engine",
	Long:          `Resolve Palladium-style melee rounds from a roster file and inspect stored round logs.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("redis") {
			loaded.RedisAddr = redisAddr
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for field, msgs := range errors.FieldErrors(err) {
			for _, msg := range msgs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for round logs (overrides MELEE_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (overrides MELEE_LOG_LEVEL)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(roundsCmd)
}
