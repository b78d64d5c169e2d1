package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/cmd/cfr/cmd/export"
	"collab-filter/cmd/cfr/cmd/items"
	"collab-filter/cmd/cfr/cmd/query"
	"collab-filter/cmd/cfr/cmd/report"
	"collab-filter/cmd/cfr/cmd/serve"
	"collab-filter/cmd/cfr/cmd/transpose"
	"collab-filter/cmd/cfr/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfr",
	Short: "User-based and item-based collaborative filtering over a rating feed",
	Long: `cfr loads a "user item rating timestamp" feed into a rating grid and answers
similarity, neighbor and recommendation queries over it.

- The feed comes from a local file, an s3:// object or a SQL query
- Grid bounds come from --rows/--cols, the config file or CFR_ROWS/CFR_COLS
- Every query also runs on the transposed (item x user) grid`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(query.SimilarityCmd)
	rootCmd.AddCommand(query.TopCmd)
	rootCmd.AddCommand(query.RecommendCmd)
	rootCmd.AddCommand(transpose.Cmd)
	rootCmd.AddCommand(items.Cmd)
	rootCmd.AddCommand(items.RecommendCmd)
	rootCmd.AddCommand(report.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	common.AddPersistentFlags(rootCmd)
}
