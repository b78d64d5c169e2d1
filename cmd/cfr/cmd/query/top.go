package query

import (
	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/report"
)

var topFlags common.RankFlags

func init() {
	topFlags.Register(TopCmd, true)
}

// TopCmd represents the top command
var TopCmd = &cobra.Command{
	Use:   "top ENTITY",
	Short: "List the rows most similar to ENTITY",
	Long: `List the rows most similar to ENTITY, best first, as "id score" lines.

With --items ENTITY is an item and the neighbors are items.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRanked(cmd, args[0], &topFlags, (*recommend.Engine).UserMatches, (*recommend.Engine).ItemMatches)
	},
}

type rankMethod func(e *recommend.Engine, entity int, q recommend.Query) (recommend.Ranked, error)

func runRanked(cmd *cobra.Command, arg string, flags *common.RankFlags, users, items rankMethod) error {
	entity, err := common.ParseID(arg, "ENTITY")
	if err != nil {
		return err
	}
	q, err := flags.Query()
	if err != nil {
		return err
	}

	engine, logger, err := common.LoadEngine(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	method := users
	if flags.Items {
		method = items
	}
	ranked, err := method(engine, entity, q)
	if err != nil {
		return err
	}
	return report.WriteRanked(cmd.OutOrStdout(), ranked)
}
