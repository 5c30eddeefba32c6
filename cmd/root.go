// Package cmd implements the CLI commands for blogpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/core/convert"
	"github.com/gaurav-prasanna/blogpipe/core/load"
	"github.com/gaurav-prasanna/blogpipe/core/page"
	"github.com/gaurav-prasanna/blogpipe/core/pipeline"
	"github.com/gaurav-prasanna/blogpipe/internal/config"
	"github.com/gaurav-prasanna/blogpipe/internal/logger"
)

// Persistent flag variables.
var (
	flagConfig   string
	flagLogLevel string
	flagTemplate string
	flagMount    string
	flagAssetDir string
)

var rootCmd = &cobra.Command{
	Use:   "blogpipe",
	Short: "blogpipe: render markdown blog posts into HTML pages",
	Long: `blogpipe converts loosely structured markdown blog posts into an HTML
fragment plus page metadata, and patches both into a blog page template.

Usage:
  blogpipe render <location>... [flags]
  blogpipe serve [flags]`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTemplate, "template", "", "Page template (default: built-in template)")
	rootCmd.PersistentFlags().StringVar(&flagMount, "mount", "", "Selector of the content mount point")
	rootCmd.PersistentFlags().StringVar(&flagAssetDir, "asset_dir", "", "Directory mapped images are referenced from")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagTemplate != "" {
		cfg.Template = flagTemplate
	}
	if flagMount != "" {
		cfg.Mount = flagMount
	}
	if flagAssetDir != "" {
		cfg.AssetDir = flagAssetDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app holds the components built from a config.
type app struct {
	log      *logger.Logger
	pipeline *pipeline.Pipeline
	updater  *page.Updater
	template []byte
}

// newApp builds the pipeline components from cfg.
func newApp(cfg *config.Config) (*app, error) {
	log := logger.NewFromConfig(cfg.LogLevel)

	template := page.DefaultTemplate
	if cfg.Template != "" {
		data, err := os.ReadFile(cfg.Template)
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		template = data
	}

	converter := convert.New(core.ImageMapping(cfg.Images),
		convert.WithAssetDir(cfg.AssetDir),
		convert.WithLogger(log),
	)
	updater := page.New(cfg.Mount,
		page.WithCoverImage(page.CoverImage{Src: cfg.CoverImage.Src, Alt: cfg.CoverImage.Alt}),
		page.WithLogger(log),
	)

	return &app{
		log:      log,
		pipeline: pipeline.New(load.New(), converter, pipeline.WithLogger(log), pipeline.WithTimeout(cfg.FetchTimeout)),
		updater:  updater,
		template: template,
	}, nil
}
