package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perspicuus/lcbft-cli/internal/config"
	"github.com/perspicuus/lcbft-cli/internal/registry"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lcbft",
	Short: "LCB-FT risk assessment toolkit",
	Long:  "Scores client/geographic/transaction profiles against the LCB-FT risk grid, imports and re-exports assessment files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadRegistry resolves the country/sector registry: the configured
// override file if one is set, otherwise the built-in lists.
func loadRegistry() (*registry.Registry, error) {
	if cfg.Registry.Path != "" {
		return registry.Load(cfg.Registry.Path)
	}
	return registry.Default(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
