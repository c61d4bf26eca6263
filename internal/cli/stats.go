package cli

import (
	"github.com/spf13/cobra"

	"github.com/medialens/medialens/internal/config"
	"github.com/medialens/medialens/pkg/render"
	"github.com/medialens/medialens/pkg/view"
)

// newStatsCmd creates the stats command: aggregate statistics for a dataset.
func newStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file.csv]",
		Short: "Print aggregate statistics for a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path, err := resolveDataPath(args, cfg)
			if err != nil {
				return err
			}

			store := loadStore(cmd.Context(), path)
			stats := view.ComputeStats(store.Records())

			printKeyValue("Outlets", formatInt(stats.TotalOutlets))
			printKeyValue("Owners", formatInt(stats.UniqueOwners))
			printKeyValue("Audience", render.FormatAudience(stats.TotalAudience))
			return nil
		},
	}
}

// newOwnersCmd creates the owners command: the owner leaderboard.
func newOwnersCmd(configPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "owners [file.csv]",
		Short: "Print the owner leaderboard sorted by outlet count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path, err := resolveDataPath(args, cfg)
			if err != nil {
				return err
			}

			store := loadStore(cmd.Context(), path)
			aggs := view.OwnerAggregates(store.Records())
			if limit > 0 && limit < len(aggs) {
				aggs = aggs[:limit]
			}

			printOwnerTable(aggs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the top N owners (0 = all)")
	return cmd
}
