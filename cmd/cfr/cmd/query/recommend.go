package query

import (
	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/recommend"
)

var recommendFlags common.RankFlags

func init() {
	recommendFlags.Register(RecommendCmd, true)
}

// RecommendCmd represents the recommend command
var RecommendCmd = &cobra.Command{
	Use:   "recommend ENTITY",
	Short: "Predict ratings for the columns ENTITY has not rated",
	Long: `Predict ratings for the columns ENTITY has not rated, highest first, as
"column predicted-rating" lines.

Neighbors with a non-positive similarity do not contribute. With --items the
grid is transposed, so ENTITY is an item and the result lists users.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRanked(cmd, args[0], &recommendFlags, (*recommend.Engine).UserRecommendations, (*recommend.Engine).ItemRecommendations)
	},
}
