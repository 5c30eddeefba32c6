// Package render provides output renderers for converted posts.
// This file implements the JSON renderer.
// It reports the post's metadata and fragment together with structural
// information read back from the fragment (headings, links, images, block
// counts).
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/blogpipe/core"
)

// placeholderPrefix is the text of an unmapped image placeholder.
const placeholderPrefix = "Image: "

// JSONRenderer produces structured JSON output from a post.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts a post into the PostJSON structure.
func (r *JSONRenderer) Render(post *core.Post) ([]byte, error) {
	doc, err := parseFragment(post.HTML)
	if err != nil {
		return nil, err
	}

	out := core.PostJSON{
		Source:   post.Source,
		Metadata: post.Metadata,
		Content: core.PostContent{
			Text: plainText(doc),
			HTML: post.HTML,
		},
		Structure: core.PostStructure{
			Headings:     extractHeadings(doc),
			Links:        extractLinks(doc),
			Images:       extractImages(doc),
			Placeholders: extractPlaceholders(doc),
			Paragraphs:   doc.Find("p").Length(),
			Lists:        doc.Find("ul, ol").Length(),
			Blockquotes:  doc.Find("blockquote").Length(),
			CodeBlocks:   doc.Find("pre").Length(),
			Tables:       doc.Find("table").Length(),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// parseFragment parses an HTML fragment into a document whose body holds it.
func parseFragment(fragment string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	return doc, nil
}

func extractHeadings(doc *goquery.Document) []core.Heading {
	headings := []core.Heading{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, core.Heading{
			Level: level,
			Text:  strings.TrimSpace(s.Text()),
		})
	})
	return headings
}

func extractLinks(doc *goquery.Document) []core.Link {
	links := []core.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, core.Link{
			Text: strings.TrimSpace(s.Text()),
			Href: href,
		})
	})
	return links
}

func extractImages(doc *goquery.Document) []core.Image {
	images := []core.Image{}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		images = append(images, core.Image{Src: src, Alt: alt})
	})
	return images
}

func extractPlaceholders(doc *goquery.Document) []string {
	keys := []string{}
	doc.Find(".image-placeholder").Each(func(_ int, s *goquery.Selection) {
		keys = append(keys, strings.TrimPrefix(strings.TrimSpace(s.Text()), placeholderPrefix))
	})
	return keys
}

// plainText returns the visible text of the fragment, one block per line.
// Placeholders are hidden on the page and left out.
func plainText(doc *goquery.Document) string {
	body := doc.Find("body").Clone()
	body.Find(".image-placeholder").Remove()

	var lines []string
	body.Children().Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}
