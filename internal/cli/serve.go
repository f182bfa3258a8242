package cli

import (
	"github.com/spf13/cobra"

	"github.com/MitulSrivastava/urban-investor/internal/config"
	"github.com/MitulSrivastava/urban-investor/internal/logging"
	"github.com/MitulSrivastava/urban-investor/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the listings website",
		Long:  "Start the HTTP server for the listings page and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: UI_PORT or 8080)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cfg := config.Load()
	logging.Setup(cfg.DevMode)

	if !cmd.Flags().Changed("port") {
		port = cfg.Port
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	server, err := web.NewServer(catalog)
	if err != nil {
		return err
	}

	return server.ListenAndServe(port)
}
