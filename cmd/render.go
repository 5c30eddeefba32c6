// Package cmd: render command.
// Runs each document through the pipeline:
// load → convert → render → write.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/core/output"
	"github.com/gaurav-prasanna/blogpipe/core/pipeline"
	"github.com/gaurav-prasanna/blogpipe/core/render"
	"github.com/gaurav-prasanna/blogpipe/internal/styles"
)

// Flag variables.
var (
	flagFormat    string
	flagOutputDir string
)

var renderCmd = &cobra.Command{
	Use:   "render [location...]",
	Short: "Render markdown posts to the specified output format",
	Long: `Render loads each markdown post (a local path or an http(s) URL), converts it,
and writes one output file per post. Without arguments the configured source is
rendered.

Formats:
  html      the page template patched with the post (default)
  json      metadata, fragment and structure summary
  markdown  the fragment exported back to CommonMark
  pdf       a printable document

Examples:
  blogpipe render "URL_ Los Algodones - Pillar Topic.md"
  blogpipe render https://example.com/posts/crowns.md --format json --output_dir ./out
  blogpipe render post.md --template blog.html --mount "#post-body"`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&flagFormat, "format", "html", "Output format: html, json, markdown, pdf")
	renderCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: config output_dir or current directory)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(flagFormat, a)
	if err != nil {
		return err
	}

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	writer, err := output.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	locations := args
	if len(locations) == 0 {
		locations = []string{cfg.Source}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var errCount int
	for i, location := range locations {
		if len(locations) > 1 {
			fmt.Fprintln(os.Stdout, styles.DimStyle.Render(fmt.Sprintf("[%d/%d] Processing %s", i+1, len(locations), location)))
		}

		path, err := renderOne(ctx, location, a.pipeline, renderer, writer)
		if err != nil {
			a.log.RenderFailed(location, err)
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Error: "+err.Error()))
			errCount++
			continue
		}
		fmt.Fprintln(os.Stdout, styles.SuccessStyle.Render("✓ Written: "+path))
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d posts failed", errCount, len(locations))
	}
	return nil
}

// renderOne runs a single document through the pipeline and writes it.
func renderOne(
	ctx context.Context,
	location string,
	p *pipeline.Pipeline,
	renderer core.Renderer,
	writer *output.Writer,
) (string, error) {
	post, err := p.Process(ctx, location)
	if err != nil {
		return "", err
	}

	data, err := renderer.Render(post)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	return writer.Write(location, data, renderer.Extension())
}

// selectRenderer creates the Renderer for the named format.
func selectRenderer(format string, a *app) (core.Renderer, error) {
	switch format {
	case "html":
		return render.NewPageRenderer(a.template, a.updater), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "markdown", "md":
		return render.NewMarkdownRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q: must be one of html, json, markdown, pdf", format)
	}
}
