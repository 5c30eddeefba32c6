// Package core defines the pipeline types and interfaces for blogpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// Category values assigned by the metadata extractor.
const (
	CategoryDentalTourism = "Dental Tourism"
	CategoryTravel        = "Travel"
	CategoryDentalCare    = "Dental Care"
)

// Metadata describes a blog post for the page head and on-page display.
// It is derived once per conversion and never mutated afterwards.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"` // long form, e.g. "January 5, 2025"
}

// Post is the result of converting one markdown document.
type Post struct {
	Source   string   `json:"source"`
	Markdown string   `json:"-"`
	HTML     string   `json:"html"`
	Metadata Metadata `json:"metadata"`
}

// ImageMapping maps a symbolic image reference key (e.g. "image7") to a
// physical filename inside the asset directory.
type ImageMapping map[string]string

// Lookup returns the filename for key. Lookups are exact-match.
func (m ImageMapping) Lookup(key string) (string, bool) {
	file, ok := m[key]
	return file, ok
}

// Loader retrieves the raw markdown text stored at a location.
type Loader interface {
	Load(ctx context.Context, location string) (string, error)
}

// Converter turns raw markdown text into an HTML fragment and its metadata.
type Converter interface {
	Convert(markdown string) (html string, meta Metadata)
}

// Renderer converts a post into a final output format.
type Renderer interface {
	Render(post *Post) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}

// Logger is the structured logger the pipeline stages report to.
// *logger.Logger from internal/logger satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// PostJSON is the document written by the JSON renderer.
type PostJSON struct {
	Source    string        `json:"source,omitempty"`
	Metadata  Metadata      `json:"metadata"`
	Content   PostContent   `json:"content"`
	Structure PostStructure `json:"structure"`
}

// PostContent holds the rendered fragment and its plain text.
type PostContent struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// PostStructure summarizes the block structure of a rendered fragment.
type PostStructure struct {
	Headings     []Heading `json:"headings"`
	Links        []Link    `json:"links"`
	Images       []Image   `json:"images"`
	Placeholders []string  `json:"placeholders"` // unmapped image keys
	Paragraphs   int       `json:"paragraphs"`
	Lists        int       `json:"lists"`
	Blockquotes  int       `json:"blockquotes"`
	CodeBlocks   int       `json:"code_blocks"`
	Tables       int       `json:"tables"`
}

// Heading is a header element of the fragment.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is an anchor of the fragment.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is a visible image of the fragment.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
