package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBlocks(t *testing.T) {
	assert.Equal(t, []string{"a\nb", "c"}, SplitBlocks("a\nb\n\n\n  \nc"))
	assert.Equal(t, []string{"only one\nblock here\n- with a list"}, SplitBlocks("only one\nblock here\n- with a list"))
	assert.Empty(t, SplitBlocks("\n\n  \n"))
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		row      string
		expected []string
	}{
		{"a|b", []string{"a", "b"}},
		{"| a | b |", []string{"a", "b"}},
		{"|a||b|", []string{"a", "", "b"}},
		{"|  |  |", nil},
	}
	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			got := SplitCells(tt.row)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsContinuation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"lowercase start", "and this line goes on and on well past the fifty character mark", true},
		{"short line", "Short line.", true},
		{"function word prefix", "The clinic is open every day of the week including most public holidays.", true},
		{"bare prefix match", "Another sentence that is definitely longer than fifty characters.", true},
		{"long capitalized line", "Second sentence is also well over the fifty character threshold here.", false},
		{"exactly fifty is not short", "Xxxxxxxxx Xxxxxxxxx Xxxxxxxxx Xxxxxxxxx Xxxxxxxxxx", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContinuation(tt.line))
		})
	}
}

func TestRenderBlocks(t *testing.T) {
	conv := New(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold wrapped header",
			input:    "## **Title**",
			expected: "<h2>Title</h2>",
		},
		{
			name:     "header levels pass through as one block",
			input:    "# A\n## B\n### C\n#### D",
			expected: "<h1>A</h1>\n<h2>B</h2>\n<h3>C</h3>\n<h4>D</h4>",
		},
		{
			name:     "header text is not inline formatted",
			input:    "### Crowns *and* bridges",
			expected: "<h3>Crowns *and* bridges</h3>",
		},
		{
			name:     "fifth level is plain text",
			input:    "##### Five",
			expected: `<p class="mobile-paragraph">##### Five</p>`,
		},
		{
			name:     "ordered list with continuation",
			input:    "1. A\n2. B\nmore",
			expected: `<ol class="mobile-list"><li>A</li><li>B more</li></ol>`,
		},
		{
			name:     "unordered list markers",
			input:    "- one\n* two **bold**\n+ three",
			expected: `<ul class="mobile-list"><li>one</li><li>two <strong>bold</strong></li><li>three</li></ul>`,
		},
		{
			name:     "text before first marker is dropped",
			input:    "Intro line\n- item",
			expected: `<ul class="mobile-list"><li>item</li></ul>`,
		},
		{
			name:     "ordered wins over unordered",
			input:    "- first\n1. second",
			expected: `<ol class="mobile-list"><li>second</li></ol>`,
		},
		{
			name:  "blockquotes wrapped per line",
			input: "> first\n> second **b**",
			expected: `<blockquote class="mobile-blockquote"><p>first</p></blockquote>` + "\n" +
				`<blockquote class="mobile-blockquote"><p>second <strong>b</strong></p></blockquote>`,
		},
		{
			name:  "rules between paragraphs",
			input: "Text\n\n---\n\nMore\n\n***",
			expected: `<p class="mobile-paragraph">Text</p>` + "\n\n" + `<hr class="mobile-hr">` + "\n\n" +
				`<p class="mobile-paragraph">More</p>` + "\n\n" + `<hr class="mobile-hr">`,
		},
		{
			name:     "fenced code with language",
			input:    "```go\nfmt.Println(\"hi\")\n```",
			expected: "<pre><code class=\"language-go\">fmt.Println(\"hi\")\n</code></pre>",
		},
		{
			name:     "fenced code without language",
			input:    "```\nx := 1\n```",
			expected: "<pre><code class=\"language-\">x := 1\n</code></pre>",
		},
		{
			name:     "simple table",
			input:    "a|b\n---|---\n1|2",
			expected: "<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>",
		},
		{
			name:  "table with outer pipes and formatting",
			input: "| **Name** | Cost |\n|---|---|\n| Crown | $500 |\n|  |  |",
			expected: "<table><thead><tr><th><strong>Name</strong></th><th>Cost</th></tr></thead>" +
				"<tbody><tr><td>Crown</td><td>$500</td></tr></tbody></table>",
		},
		{
			name:     "pipes without separator are a paragraph",
			input:    "a | b\nc | d",
			expected: `<p class="mobile-paragraph">a | b c | d</p>`,
		},
		{
			name:     "single line paragraph",
			input:    "Hello **world**",
			expected: `<p class="mobile-paragraph">Hello <strong>world</strong></p>`,
		},
		{
			name: "long capitalized lines split paragraphs",
			input: "This first sentence is long enough to exceed fifty characters easily.\n" +
				"Second sentence is also well over the fifty character threshold here.",
			expected: `<p class="mobile-paragraph">This first sentence is long enough to exceed fifty characters easily.</p>` + "\n\n" +
				`<p class="mobile-paragraph">Second sentence is also well over the fifty character threshold here.</p>`,
		},
		{
			name: "prefix match merges lines",
			input: "This first sentence is long enough to exceed fifty characters easily.\n" +
				"Another sentence that is definitely longer than fifty characters.",
			expected: `<p class="mobile-paragraph">This first sentence is long enough to exceed fifty characters easily. ` +
				`Another sentence that is definitely longer than fifty characters.</p>`,
		},
		{
			name:     "short and lowercase lines merge",
			input:    "Line one is here.\nand continues\nShort line.",
			expected: `<p class="mobile-paragraph">Line one is here. and continues Short line.</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, conv.RenderHTML(tt.input))
		})
	}
}

func TestRenderDocumentWithoutBlankLinesIsOneBlock(t *testing.T) {
	conv := New(nil)
	input := "First line of text that is long enough to stand alone here.\nsecond line continues it\nThird"

	out := conv.RenderHTML(input)

	assert.Equal(t, `<p class="mobile-paragraph">First line of text that is long enough to stand alone here. second line continues it Third</p>`, out)
	assert.Len(t, SplitBlocks(input), 1)
}
