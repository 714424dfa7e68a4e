package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/drawio-embed/internal/config"
	"github.com/ziadkadry99/drawio-embed/internal/server"
)

var (
	servePort     int
	serveOpen     bool
	serveNoReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [site-dir]",
	Short: "Preview the patched site locally",
	Long: `Starts a local HTTP server for the patched site, with live reload:
connected browsers refresh automatically when the site directory
changes, for example after re-running patch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(args) == 1 {
			cfg.SiteDir = args[0]
		}

		srv := server.New(server.Config{
			Port:       servePort,
			SiteDir:    cfg.SiteDir,
			LiveReload: !serveNoReload,
			Open:       serveOpen,
		})
		return srv.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "port to listen on")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the browser on startup")
	serveCmd.Flags().BoolVar(&serveNoReload, "no-reload", false, "disable live reload")
	rootCmd.AddCommand(serveCmd)
}
