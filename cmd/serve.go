package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/enrich"
	"github.com/litmap-app/litmap/internal/googlebooks"
	"github.com/litmap-app/litmap/internal/handlers"
	"github.com/litmap-app/litmap/internal/openlibrary"
	"github.com/litmap-app/litmap/internal/resolver"
	"github.com/litmap-app/litmap/internal/wikidata"
)

func newServeCmd() *cobra.Command {
	var port string
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the enrichment API server",
		Long: `Starts the litmap API on the specified port.

The API accepts book collections for enrichment, keeps completed runs in
memory for the duration of the process, and exposes offline country detection
for presentation callers.`,
		Example: `  # Start server on default port 8888
  litmap serve

  # Start server on custom port
  litmap serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := countries.NewVocabulary()
			if err != nil {
				return fmt.Errorf("failed to build country vocabulary: %w", err)
			}

			authorResolver := resolver.New(wikidata.NewClient(), vocab)
			service := enrich.NewService(googlebooks.NewClient(), openlibrary.NewClient(), authorResolver, vocab)
			service.Delay = delay

			handler := handlers.New(service, vocab)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/enrich", handler.HandleEnrich)
			mux.HandleFunc("/api/runs", handler.HandleRuns)
			mux.HandleFunc("/api/runs/", handler.HandleRunDetail)
			mux.HandleFunc("/api/countries", handler.HandleCountries)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Litmap API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "Delay between successive book lookups")

	return cmd
}
