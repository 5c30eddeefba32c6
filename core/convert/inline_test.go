package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold then italic",
			input:    "**bold** and *italic*",
			expected: "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:     "four asterisk bold",
			input:    "****both****",
			expected: "<strong>both</strong>",
		},
		{
			name:     "underscore italic",
			input:    "_under_ score",
			expected: "<em>under</em> score",
		},
		{
			name:     "strikethrough",
			input:    "~~old~~ new",
			expected: "<del>old</del> new",
		},
		{
			name:     "link opens new context",
			input:    "see [the guide](https://example.com/guide)",
			expected: `see <a href="https://example.com/guide" target="_blank">the guide</a>`,
		},
		{
			name:     "link href is not emphasized",
			input:    "[Visit](https://example.com/a_b_c)",
			expected: `<a href="https://example.com/a_b_c" target="_blank">Visit</a>`,
		},
		{
			name:     "bold link text",
			input:    "[**Book now**](/contact)",
			expected: `<a href="/contact" target="_blank"><strong>Book now</strong></a>`,
		},
		{
			name:     "code span content is literal",
			input:    "use `a*b*c` and `x_y_z`",
			expected: "use <code>a*b*c</code> and <code>x_y_z</code>",
		},
		{
			name:     "existing tag attributes untouched",
			input:    `<img src="Webp/7_a_b.webp" alt="x"> caption *here*`,
			expected: `<img src="Webp/7_a_b.webp" alt="x"> caption <em>here</em>`,
		},
		{
			name:     "unterminated markers pass through",
			input:    "unterminated *star and **bold",
			expected: "unterminated *star and **bold",
		},
		{
			name:     "asterisk next to asterisk is not italic",
			input:    "*a**b*",
			expected: "*a**b*",
		},
		{
			name:     "intra-word underscores still emphasize",
			input:    "snake_case_name",
			expected: "snake<em>case</em>name",
		},
		{
			name:     "plain text",
			input:    "Nothing to see here.",
			expected: "Nothing to see here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatInline(tt.input))
		})
	}
}

func TestFormatInlineLeavesNoPlaceholders(t *testing.T) {
	out := FormatInline("`one` [two](u) `three` <b>four</b>")
	assert.NotContains(t, out, "\x00")
	assert.Equal(t, `<code>one</code> <a href="u" target="_blank">two</a> <code>three</code> <b>four</b>`, out)
}
