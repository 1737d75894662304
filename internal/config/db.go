package config

import (
	"errors"
	"net/url"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	Address  string `mapstructure:"address"`
	// Transactions wraps every vault mutation in a mongo session transaction.
	// Requires the server to run as a replica set. Defaults to true.
	Transactions bool `mapstructure:"transactions"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return errors.New("missing db username")
	}

	if cfg.Password == "" {
		return errors.New("missing db password")
	}

	if cfg.DbName == "" {
		return errors.New("missing db name")
	}

	if cfg.Address == "" {
		return errors.New("missing db address")
	}

	if _, err := url.Parse(cfg.Address); err != nil {
		return errors.New("invalid db address")
	}

	// a vault mutation writes the vault, the leaderboard entry and the global
	// config, without a transaction a failed write leaves them apart
	if !cfg.Transactions {
		return errors.New("db transactions must be enabled")
	}

	return nil
}
