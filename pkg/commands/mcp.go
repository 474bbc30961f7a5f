package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes goals, runs, history and the summary
as tools and resources. Over HTTP, ` + mcp.HealthPath + ` reports goal and run counts.`,
		Example: `
runlog mcp --transport stdio
runlog mcp --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid http-port %d", port)
			}
			h := strings.TrimSpace(host)
			if h == "" {
				h = "127.0.0.1"
			}

			svc, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			r := mcp.Runner{
				Service:   svc,
				Version:   version,
				Transport: mcp.Transport(strings.ToLower(strings.TrimSpace(transport))),
				Addr:      net.JoinHostPort(h, strconv.Itoa(port)),
				Path:      path,
				TLSCert:   strings.TrimSpace(tlsCert),
				TLSKey:    strings.TrimSpace(tlsKey),
				OnListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&path, "http-path", mcp.DefaultPath, "HTTP endpoint path")
	cmd.Flags().StringVar(&tlsCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&tlsKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}
