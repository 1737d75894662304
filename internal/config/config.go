package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db      DbConfig      `mapstructure:"db"`
	Vault   VaultConfig   `mapstructure:"vault"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Queue   *QueueConfig  `mapstructure:"queue"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return fmt.Errorf("invalid db config: %w", err)
	}

	if err := cfg.Vault.Validate(); err != nil {
		return fmt.Errorf("invalid vault config: %w", err)
	}

	if err := cfg.Poller.Validate(); err != nil {
		return fmt.Errorf("invalid poller config: %w", err)
	}

	// queue is optional, events are dropped when it's absent
	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return fmt.Errorf("invalid queue config: %w", err)
		}
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Values in the file can be overridden with environment variables,
// e.g. `db.username` is read from `DB_USERNAME`.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetDefault("db.transactions", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
