package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/naman/xhire/internal/bookmarks"
	"github.com/naman/xhire/internal/config"
	"github.com/naman/xhire/internal/jobs"
	"github.com/naman/xhire/internal/llm"
	"github.com/naman/xhire/internal/mockdata"
	"github.com/naman/xhire/internal/server"
	"github.com/naman/xhire/internal/twitter"
	"github.com/naman/xhire/internal/xhireapi"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes job-posting tweets, source availability, and bookmarks.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT or 8090)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	service, closeService, err := newJobService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeService()

	bookmarksPath := cfg.BookmarksPath
	if bookmarksPath == "" {
		bookmarksPath, err = bookmarks.DefaultPath()
		if err != nil {
			return err
		}
	}
	store, err := bookmarks.Open(bookmarksPath)
	if err != nil {
		return fmt.Errorf("failed to open bookmark store: %w", err)
	}

	srv := server.New(server.Config{
		Port:      cfg.Port,
		Jobs:      service,
		Bookmarks: store,
	})
	return srv.Start()
}

// newJobService wires the retrieval orchestrator from configuration. The
// returned close function releases the Gemini client when one was created.
func newJobService(ctx context.Context, cfg *config.Config) (*jobs.Service, func(), error) {
	serviceCfg := jobs.ServiceConfig{
		Fallback: mockdata.NewSource(),
	}
	closeService := func() {}

	if cfg.XhireAPIEndpoint != "" {
		serviceCfg.Aggregator = xhireapi.NewClient(xhireapi.Config{Endpoint: cfg.XhireAPIEndpoint})
		log.Printf("Using XHire API at %s", cfg.XhireAPIEndpoint)
	}

	social := twitter.NewClient(twitter.Config{BearerToken: cfg.TwitterBearerToken})
	if social.Configured() {
		serviceCfg.Social = social
		log.Printf("Twitter API configured")
	} else {
		log.Printf("Twitter API not configured; mock data will be served")
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		serviceCfg.Enricher = llm.NewSummarizer(client)
		closeService = func() { _ = client.Close() }
		log.Printf("Gemini enrichment configured")
	}

	if cfg.UseOwnerKeys {
		log.Printf("Using bundled owner credentials")
	}

	return jobs.NewService(serviceCfg), closeService, nil
}
