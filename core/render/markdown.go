// Package render provides output renderers for converted posts.
// This file implements the Markdown renderer, which exports the rendered
// fragment back to clean CommonMark.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/blogpipe/core"
)

// MarkdownRenderer converts a post's fragment to CommonMark.
// Hidden image placeholders are dropped, and the title is added as a
// top-level heading when the fragment has none.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the post as Markdown bytes.
func (r *MarkdownRenderer) Render(post *core.Post) ([]byte, error) {
	doc, err := parseFragment(post.HTML)
	if err != nil {
		return nil, err
	}
	body := doc.Find("body")
	body.Find(".image-placeholder").Remove()
	hasTitle := body.Find("h1").Length() > 0

	fragment, err := body.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing fragment: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)

	if !hasTitle && post.Metadata.Title != "" {
		markdown = "# " + post.Metadata.Title + "\n\n" + markdown
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
