package config

import (
	"errors"
	"time"
)

const (
	defaultStatsPollingInterval = 5 * time.Minute
	defaultRetryAttempts        = 3
	defaultRetryDelay           = time.Second
)

type PollerConfig struct {
	HarvestPollingInterval     time.Duration `mapstructure:"harvest-polling-interval"`
	LeaderboardPollingInterval time.Duration `mapstructure:"leaderboard-polling-interval"`
	StatsPollingInterval       time.Duration `mapstructure:"stats-polling-interval"`
	HarvestBatchSize           int64         `mapstructure:"harvest-batch-size"`
	AchievementWorkers         int           `mapstructure:"achievement-workers"`
	RetryAttempts              uint          `mapstructure:"retry-attempts"`
	RetryDelay                 time.Duration `mapstructure:"retry-delay"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.HarvestPollingInterval <= 0 {
		return errors.New("harvest-polling-interval must be positive")
	}

	if cfg.LeaderboardPollingInterval <= 0 {
		return errors.New("leaderboard-polling-interval must be positive")
	}

	if cfg.HarvestBatchSize <= 0 {
		return errors.New("harvest-batch-size must be positive")
	}

	if cfg.AchievementWorkers <= 0 {
		return errors.New("achievement-workers must be positive")
	}

	if cfg.StatsPollingInterval <= 0 {
		cfg.StatsPollingInterval = defaultStatsPollingInterval
	}

	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}

	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return nil
}
