package serve

import (
	"github.com/spf13/cobra"

	"collab-filter/cmd/cfr/cmd/common"
	"collab-filter/internal/app"
)

var host string
var port string

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (default from config)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default from config)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve similarity and recommendation queries over HTTP",
	Long: `Serve similarity and recommendation queries over HTTP

- The feed is loaded once at startup
- Routes live under /api/v1; /health and /metrics sit at the root
- The item similarity index is built on the first request that needs it
- SIGINT or SIGTERM shuts the server down gracefully`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := common.Setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv, err := app.InitializeServer(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	},
}
