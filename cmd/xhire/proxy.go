package main

import (
	"github.com/spf13/cobra"

	"github.com/naman/xhire/internal/proxy"
)

var (
	proxyHost string
	proxyPort int
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Start the development CORS forwarding proxy",
	Long: `Start a local proxy that forwards requests to a target URL embedded in the
request path, relaxing cross-origin restrictions for browser clients, e.g.

  http://localhost:8080/https://api.twitter.com/2/tweets/search/recent?query=...`,
	RunE: runProxy,
}

func init() {
	proxyCmd.Flags().StringVar(&proxyHost, "host", "", "Host to bind (default from PROXY_HOST or localhost)")
	proxyCmd.Flags().IntVar(&proxyPort, "port", 0, "Port to listen on (default from PROXY_PORT or 8080)")
	rootCmd.AddCommand(proxyCmd)
}

func runProxy(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if proxyHost != "" {
		cfg.ProxyHost = proxyHost
	}
	if proxyPort != 0 {
		cfg.ProxyPort = proxyPort
	}

	return proxy.ListenAndServe(cfg.ProxyHost, cfg.ProxyPort)
}
