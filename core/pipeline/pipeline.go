// Package pipeline wires the stages together: load -> convert -> update.
//
// It is the error boundary of a page view. Load failures and a missing
// mount point are logged and turned into an inline notice in the page;
// they never abort serving the rest of the page.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/core/page"
	"github.com/gaurav-prasanna/blogpipe/internal/logger"
)

// LoadFailure reports that the document at Location could not be loaded.
// Err is the loader's error: a *load.FetchError or a transport failure.
type LoadFailure struct {
	Location string
	Err      error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Location, e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// IsLoadFailure reports whether err is or wraps a *LoadFailure.
func IsLoadFailure(err error) bool {
	var lf *LoadFailure
	return errors.As(err, &lf)
}

// IsContainerMissing reports whether err signals an absent mount point.
func IsContainerMissing(err error) bool {
	return errors.Is(err, page.ErrContainerMissing)
}

// Pipeline runs documents through a loader and a converter.
type Pipeline struct {
	loader    core.Loader
	converter core.Converter
	logger    *logger.Logger
	timeout   time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTimeout bounds each load. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// New creates a Pipeline.
func New(loader core.Loader, converter core.Converter, opts ...Option) *Pipeline {
	p := &Pipeline{
		loader:    loader,
		converter: converter,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process loads the document at location and converts it.
// Load errors are returned as *LoadFailure.
func (p *Pipeline) Process(ctx context.Context, location string) (*core.Post, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	markdown, err := p.loader.Load(ctx, location)
	if err != nil {
		return nil, &LoadFailure{Location: location, Err: err}
	}
	p.logger.DocumentLoaded(location, len(markdown))

	html, meta := p.converter.Convert(markdown)
	p.logger.MetadataExtracted(meta.Title, meta.Category, meta.Date)
	p.logger.FragmentRendered(location, len(html))

	return &core.Post{
		Source:   location,
		Markdown: markdown,
		HTML:     html,
		Metadata: meta,
	}, nil
}

// Page performs one page view: it loads and converts the document at
// location and patches it into a copy of template.
//
// On a failure the page is still returned and the error alongside it.
// A load failure puts the loader's error into the mount point; any other
// failure puts page.FallbackMessage there, if the mount point exists. A nil page means the template itself
// could not be processed.
func (p *Pipeline) Page(ctx context.Context, location string, template []byte, updater *page.Updater) ([]byte, error) {
	doc, err := page.Parse(template)
	if err != nil {
		return nil, err
	}

	post, err := p.Process(ctx, location)
	if err == nil {
		err = updater.Update(doc, post.HTML, post.Metadata)
	}
	if err != nil {
		p.logger.RenderFailed(location, err)
		if !p.showFailure(doc, updater, err) {
			p.logger.Warn("no mount point for error message", "mount", updater.Mount())
		}
	} else {
		p.logger.ContentInserted(updater.Mount())
	}

	out, rerr := page.Render(doc)
	if rerr != nil {
		return nil, rerr
	}
	return out, err
}

func (p *Pipeline) showFailure(doc *goquery.Document, updater *page.Updater, err error) bool {
	var lf *LoadFailure
	if errors.As(err, &lf) {
		return updater.ShowError(doc, lf.Err)
	}
	return updater.ShowMessage(doc, page.FallbackMessage)
}
