// server/cmd/api/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "jiffy",
	Short: "Jiffy back-office API server",
	// Running the binary without a subcommand starts the server.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config", "directory holding config.yaml")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedAdminCmd)
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("could not load config: %w", err)
	}
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.JSON)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("could not build logger: %w", err)
	}
	return cfg, log, nil
}
