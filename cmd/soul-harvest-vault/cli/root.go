package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kiroween-labs/soul-harvest-vault/pkg"
)

const (
	defaultConfigFileName = "config.yml"
	// configPathEnv overrides the default --config value
	configPathEnv = "SOUL_HARVEST_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:   "soul-harvest-vault",
		Short: "Soul Harvest Vault reward engine",
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := defaultConfigPath(homePath)

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(HarvestCmd())
	rootCmd.AddCommand(RankLeaderboardCmd())
	rootCmd.AddCommand(TierCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", configPath, fmt.Sprintf("config file (default %s)", configPath))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func defaultConfigPath(homePath string) string {
	return pkg.Getenv(configPathEnv, filepath.Join(homePath, defaultConfigFileName))
}

func GetConfigPath() string {
	return cfgPath
}
