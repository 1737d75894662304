package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID attaches a logger carrying a fresh trace id to ctx.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// WithOwner attaches a logger carrying the vault owner to ctx, keeping any
// fields already present in the context logger.
func WithOwner(ctx context.Context, owner string) context.Context {
	logger := log.Ctx(ctx).With().Str("owner", owner).Logger()
	return logger.WithContext(ctx)
}
