package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
)

// TierCmd prints the APY tier for a total value locked given in whole units:
// ./soul-harvest-vault tier 25000
func TierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tier [tvl]",
		Short: "Show the APY tier for a total value locked in whole units",
		Args:  cobra.ExactArgs(1),
		RunE:  tier,
	}

	return cmd
}

func tier(cmd *cobra.Command, args []string) error {
	tvl, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tvl %q: %w", args[0], err)
	}

	info := rewards.DescribeTier(tvl)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tier: %s\n", info.Name)
	fmt.Fprintf(out, "APY: %.2f%%\n", float64(info.APYBps)/100)
	if info.HasNextTier {
		fmt.Fprintf(out, "Next tier: %.2f%% at %d (%d to go)\n",
			float64(info.NextTierAPYBps)/100, info.NextTierTVL, info.Remaining())
	} else {
		fmt.Fprintln(out, "Maximum tier reached")
	}
	return nil
}
