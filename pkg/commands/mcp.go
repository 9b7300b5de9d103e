package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var transport string
	r := mcp.Runner{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to assistants over the Model Context Protocol.",
		Long: `Launch an MCP server that lets an assistant list, search and write entries,
read your profile and writing history, and toggle favorites.

The HTTP transport listens on loopback by default. Use --transport stdio when
the assistant starts the journal as a subprocess.`,
		Example: `
journal mcp
journal mcp --transport stdio
journal mcp --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return output.HandleError(err)
			}
			r.Transport = t
			r.Service = env.service
			r.Name = "journal"
			r.Version = version
			r.Logger = slog.Default()
			r.Ready = func(url string) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", url)
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport: http or stdio.")
	cmd.Flags().StringVar(&r.Host, "http-host", mcp.DefaultHost, "Interface the HTTP transport listens on.")
	cmd.Flags().IntVar(&r.Port, "http-port", mcp.DefaultPort, "Port for the HTTP transport (0 picks a free one).")
	cmd.Flags().StringVar(&r.Path, "http-path", mcp.DefaultPath, "HTTP endpoint path.")
	cmd.Flags().StringVar(&r.TLSCert, "http-tls-cert", "", "TLS certificate file; serves https together with --http-tls-key.")
	cmd.Flags().StringVar(&r.TLSKey, "http-tls-key", "", "TLS private key file.")

	topLevel.AddCommand(cmd)
}
