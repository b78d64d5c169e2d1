package items

import (
	"fmt"

	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/report"
)

var item int

func init() {
	Cmd.Flags().IntVarP(&item, "item", "i", 0, "print only this item's neighbors")
}

// Cmd represents the items command
var Cmd = &cobra.Command{
	Use:   "items",
	Short: "Build the item similarity index and print it",
	Long: `Build the item similarity index and print it

- Every item is compared with every other item on the transposed grid
- Items are scored with the distance metric and the best item_k are kept
- Each item's neighbors are printed as "id score" lines followed by a blank line`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("item") && item < 0 {
			return fmt.Errorf("item must be a non-negative integer, got %d", item)
		}

		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		out := cmd.OutOrStdout()
		if cmd.Flags().Changed("item") {
			ranked, err := engine.SimilarItems(item)
			if err != nil {
				return err
			}
			return report.WriteRanked(out, ranked)
		}

		index, err := engine.ItemIndex()
		if err != nil {
			return err
		}
		for i, ranked := range index {
			fmt.Fprintf(out, "# item %d\n", i)
			if err := report.WriteRanked(out, ranked); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
