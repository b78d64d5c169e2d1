package items

import (
	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/report"
)

var count int

func init() {
	RecommendCmd.Flags().IntVarP(&count, "count", "k", 0, "number of results (default from config)")
}

// RecommendCmd represents the recommend-items command
var RecommendCmd = &cobra.Command{
	Use:   "recommend-items USER",
	Short: "Recommend items to USER from the item similarity index",
	Long: `Recommend items to USER from the item similarity index

- Each item USER rated votes for its similar items, weighted by the rating
- Items USER already rated are never recommended
- Results are "item predicted-rating" lines, best first`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := common.ParseID(args[0], "USER")
		if err != nil {
			return err
		}

		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ranked, err := engine.RecommendedItems(user, count)
		if err != nil {
			return err
		}
		return report.WriteRanked(cmd.OutOrStdout(), ranked)
	},
}
