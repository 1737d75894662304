package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	dbmodel "github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/metrics"
	"github.com/kiroween-labs/soul-harvest-vault/internal/observability/tracing"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the scheduled harvest, leaderboard and stats pollers",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up vault db model")
	}

	dbClient, err := newDbClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	var publisher queue.Publisher = queue.NoopPublisher{}
	if cfg.Queue != nil {
		publisher, err = queue.NewQueueManager(cfg.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize queue manager")
		}
	} else {
		log.Warn().Msg("queue is not configured, vault events will not be published")
	}
	defer publisher.Shutdown()

	service := services.NewService(cfg, dbClient, publisher)
	if err := service.EnsureInitialized(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while initializing vault config")
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartPollers(ctx)

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	return nil
}

func newDbClient(ctx context.Context, cfg *config.Config) (db.DbInterface, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return nil, err
	}

	if err := dbClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db.NewDbWithMetrics(dbClient), nil
}
