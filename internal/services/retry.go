package services

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

// callWithRetry retries call on transient storage failures. Vault errors and
// missing documents are terminal and returned on the first attempt.
func callWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.PollerConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.RetryAttempts),
		retry.Delay(cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.RetryAttempts).
				Err(err).
				Msg("storage call failed, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !types.IsDomainError(err) &&
		!db.IsNotFoundError(err) &&
		!db.IsDuplicateKeyError(err)
}
