// Package convert turns the blog's markdown dialect into an HTML fragment
// and a metadata record.
//
// The dialect is loose markdown with a few extensions: reference images
// resolved through an ImageMapping ("![][image7]"), headers wrapped in
// asterisks ("## **Title**"), and trailing "[imageN]: <data:...>" definition
// lines that are stripped before rendering. Rendering is heuristic, not
// CommonMark: blocks are blank-line delimited and classified in a fixed
// priority order, and soft-wrapped paragraph lines are merged by a
// line-shape rule (see IsContinuation).
package convert

import (
	"time"

	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/internal/logger"
)

// DefaultAssetDir is the directory mapped image filenames are served from.
const DefaultAssetDir = "Webp"

// Converter implements core.Converter. It holds no per-document state, so
// a single instance may be shared.
type Converter struct {
	images   core.ImageMapping
	assetDir string
	logger   core.Logger
	now      func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithAssetDir sets the directory mapped images are referenced from.
func WithAssetDir(dir string) Option {
	return func(c *Converter) { c.assetDir = dir }
}

// WithLogger sets the logger that receives unmapped-image warnings.
func WithLogger(l core.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the time source for the metadata date.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Converter for the given image mapping. The mapping is
// copied, so later changes by the caller have no effect.
func New(images core.ImageMapping, opts ...Option) *Converter {
	own := make(core.ImageMapping, len(images))
	for key, file := range images {
		own[key] = file
	}

	c := &Converter{
		images:   own,
		assetDir: DefaultAssetDir,
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders markdown to an HTML fragment and extracts its metadata.
func (c *Converter) Convert(markdown string) (string, core.Metadata) {
	return c.RenderHTML(markdown), c.Metadata(markdown)
}

// RenderHTML renders markdown to an HTML fragment. Blocks are joined by a
// blank line.
func (c *Converter) RenderHTML(markdown string) string {
	return c.renderDocument(Preprocess(markdown))
}

// Metadata extracts the post metadata, dated by the converter's clock.
func (c *Converter) Metadata(markdown string) core.Metadata {
	return ExtractMetadata(markdown, c.now())
}
