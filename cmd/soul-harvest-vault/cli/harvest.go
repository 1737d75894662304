package cli

import (
	"github.com/spf13/cobra"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/services"
)

// HarvestCmd runs a single midnight harvest over every active vault. It is
// meant for cron style deployments that do not keep start-server running:
// ./soul-harvest-vault harvest --config config.yml
func HarvestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Run one midnight harvest over all active vaults",
		Args:  cobra.ExactArgs(0),
		RunE:  harvest,
	}

	return cmd
}

func harvest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := newDbClient(ctx, cfg)
	if err != nil {
		return err
	}

	var publisher queue.Publisher = queue.NoopPublisher{}
	if cfg.Queue != nil {
		publisher, err = queue.NewQueueManager(cfg.Queue)
		if err != nil {
			return err
		}
	}
	defer publisher.Shutdown()

	return services.NewService(cfg, dbClient, publisher).HarvestActiveVaults(ctx)
}
