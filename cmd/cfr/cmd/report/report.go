package report

import (
	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/report"
)

var opts = report.DefaultOptions()

func init() {
	Cmd.Flags().IntVarP(&opts.PairA, "pair-a", "a", opts.PairA, "first user of the similarity pair")
	Cmd.Flags().IntVarP(&opts.PairB, "pair-b", "b", opts.PairB, "second user of the similarity pair")
	Cmd.Flags().IntVarP(&opts.User, "user", "u", opts.User, "user for matches and recommendations")
	Cmd.Flags().IntVarP(&opts.Item, "item", "i", opts.Item, "item for transposed matches")
	Cmd.Flags().IntVar(&opts.ItemUser, "item-user", opts.ItemUser, "transposed row for item recommendations")
	Cmd.Flags().IntVarP(&opts.K, "count", "k", opts.K, "number of results per section")
	Cmd.Flags().BoolVar(&opts.SimilarItems, "similar-items", opts.SimilarItems, "include the full item similarity index")
}

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print every analysis for a feed in one run",
	Long: `Print every analysis for a feed in one run

- distance and Pearson similarity of one user pair
- top matches and recommendations for one user
- the same two rankings on the transposed grid
- the item similarity index (disable with --similar-items=false)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return report.Write(cmd.OutOrStdout(), engine, opts)
	},
}
