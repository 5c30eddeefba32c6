// Package cmd: serve command.
// Serves the blog page over HTTP, converting the post on every page view.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/blogpipe/internal/styles"
)

const shutdownTimeout = 5 * time.Second

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog page, rendering the post on each request",
	Long: `Serve answers GET / with the page template patched with the configured post.
The post is loaded and converted on every request, so edits to the markdown
show up on reload. Failed loads still produce the page, with an inline notice
in the content area. Mapped images are served from the asset directory.

Examples:
  blogpipe serve
  blogpipe serve --listen :8080 --template blog.html`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default: config listen)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagListen != "" {
		cfg.Listen = flagListen
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", a.pipeline.Handler(cfg.Source, a.template, a.updater))
	if cfg.AssetDir != "" {
		prefix := "/" + strings.Trim(cfg.AssetDir, "/") + "/"
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.AssetDir))))
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintln(os.Stdout, styles.TitleStyle.Render("blogpipe"))
	fmt.Fprintln(os.Stdout, styles.SuccessStyle.Render("✓ Serving "+cfg.Source+" on http://"+cfg.Listen))
	a.log.Info("server started", "listen", cfg.Listen, "source", cfg.Source, "mount", cfg.Mount)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	fmt.Fprintln(os.Stdout, styles.WarningStyle.Render("Shutting down..."))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
