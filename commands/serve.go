package commands

import (
	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/mcpserver"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var metricsPort int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP stdio server",
		Long: `Serve exposes the URL list tools over the Model Context Protocol on
stdin/stdout, for use by coding agents and other MCP clients.

Rate limits come from the serve section of the config file. With
--metrics-port (or serve.metrics_port), Prometheus metrics for tool
calls are exposed over HTTP on that port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg.Serve
			if cmd.Flags().Changed("metrics-port") {
				cfg.MetricsPort = metricsPort
			}
			return mcpserver.New(cfg).Serve()
		},
	}

	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Expose Prometheus metrics on this port")

	return cmd
}
