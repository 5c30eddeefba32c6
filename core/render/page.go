// Package render provides output renderers for converted posts.
// This file implements the page renderer, which patches the post into an
// HTML page template.
package render

import (
	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/core/page"
)

// PageRenderer writes a post into a copy of a page template.
type PageRenderer struct {
	template []byte
	updater  *page.Updater
}

// NewPageRenderer creates a PageRenderer. A nil template selects
// page.DefaultTemplate.
func NewPageRenderer(template []byte, updater *page.Updater) *PageRenderer {
	if template == nil {
		template = page.DefaultTemplate
	}
	return &PageRenderer{template: template, updater: updater}
}

// Render returns the patched page. It fails with page.ErrContainerMissing
// if the template has no mount point.
func (r *PageRenderer) Render(post *core.Post) ([]byte, error) {
	doc, err := page.Parse(r.template)
	if err != nil {
		return nil, err
	}
	if err := r.updater.Update(doc, post.HTML, post.Metadata); err != nil {
		return nil, err
	}
	return page.Render(doc)
}

// Extension returns the file extension for page output.
func (r *PageRenderer) Extension() string {
	return ".html"
}
