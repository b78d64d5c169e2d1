package export

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/export"
	"collab-filter/internal/app/recommend"
)

var outputFilePath string
var users []int
var includeGrid bool
var skipIndex bool

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntSliceVarP(&users, "user", "u", nil, "add match and recommendation sheets for these users")
	Cmd.Flags().BoolVar(&includeGrid, "grid", false, "add the full rating grid as a sheet")
	Cmd.Flags().BoolVar(&skipIndex, "no-index", false, "skip the item similarity index sheet")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export rankings and the item index to excel",
	Long: `Export rankings and the item index to excel

- The item similarity index is always exported unless --no-index is set
- Each --user adds a matches sheet and a recommendations sheet
- --grid adds the raw grid, which is large for real feeds`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		w := export.NewWorkbook()
		if !skipIndex {
			index, err := engine.ItemIndex()
			if err != nil {
				return err
			}
			if err := w.AddItemIndex(index); err != nil {
				return err
			}
		}
		for _, user := range users {
			matches, err := engine.UserMatches(user, recommend.Query{})
			if err != nil {
				return err
			}
			if err := w.AddRanked(fmt.Sprintf("Matches %d", user), user, matches); err != nil {
				return err
			}
			recs, err := engine.UserRecommendations(user, recommend.Query{})
			if err != nil {
				return err
			}
			if err := w.AddRanked(fmt.Sprintf("Recommendations %d", user), user, recs); err != nil {
				return err
			}
		}
		if includeGrid {
			if err := w.AddGrid(engine.Users()); err != nil {
				return err
			}
		}

		if err := w.Save(outputFilePath); err != nil {
			return err
		}
		logger.Info("export finished", zap.String("path", outputFilePath), zap.Strings("sheets", w.Sheets()))
		return nil
	},
}
