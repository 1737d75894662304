package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/services"
)

func RankLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank-leaderboard",
		Short: "Rank the leaderboard by tvl and persist the ranks",
		Args:  cobra.ExactArgs(0),
		RunE:  rankLeaderboard,
	}

	return cmd
}

func rankLeaderboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	dbClient, err := newDbClient(ctx, cfg)
	if err != nil {
		return err
	}

	ranked, err := services.NewService(cfg, dbClient, nil).RankLeaderboard(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entry := range ranked {
		fmt.Fprintf(out, "%4d  %-44s  %d\n", entry.Rank, entry.Owner, entry.TVL)
	}
	return nil
}
