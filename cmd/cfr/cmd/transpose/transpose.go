package transpose

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/grid"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "write the feed here instead of stdout")
}

// Cmd represents the transpose command
var Cmd = &cobra.Command{
	Use:   "transpose",
	Short: "Write the item x user grid as a feed",
	Long: `Write the transposed grid as a feed of "item user rating 0" lines.

The output loads back with --rows and --cols swapped. Timestamps are not kept
in the grid, so they are written as 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		out := cmd.OutOrStdout()
		if outputFilePath != "" {
			f, err := os.Create(outputFilePath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		items := engine.Items()
		if err := WriteFeed(out, items); err != nil {
			return err
		}
		logger.Info("transposed grid written",
			zap.Int("rows", items.Rows()),
			zap.Int("cols", items.Cols()),
			zap.Int("records", items.RatedCount()),
		)
		return nil
	},
}

// WriteFeed writes every rated cell of g as a feed record.
func WriteFeed(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.Value(r, c)
			if !grid.IsRated(v) {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d 0\n", r, c, v); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
