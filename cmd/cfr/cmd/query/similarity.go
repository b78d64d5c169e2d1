package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/similarity"
)

var similarityMetric string
var similarityItems bool

func init() {
	SimilarityCmd.Flags().StringVarP(&similarityMetric, "metric", "m", "",
		"print only this metric (pearson or distance); both by default")
	SimilarityCmd.Flags().BoolVar(&similarityItems, "items", false, "compare two items instead of two users")
}

// SimilarityCmd prints the similarity of two rows
var SimilarityCmd = &cobra.Command{
	Use:   "similarity A B",
	Short: "Print the distance and Pearson similarity of two users",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := common.ParseID(args[0], "A")
		if err != nil {
			return err
		}
		b, err := common.ParseID(args[1], "B")
		if err != nil {
			return err
		}

		metrics := []similarity.Metric{similarity.MetricDistance, similarity.MetricPearson}
		if similarityMetric != "" {
			m, err := similarity.ParseMetric(similarityMetric)
			if err != nil {
				return err
			}
			metrics = []similarity.Metric{m}
		}

		engine, logger, err := common.LoadEngine(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		g := engine.Users()
		if similarityItems {
			g = engine.Items()
		}
		for _, m := range metrics {
			score, err := m.Calculator().Calculate(g, a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.6g\n", m, score)
		}
		return nil
	},
}
