package convert

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/blogpipe/core"
)

var fixedDate = time.Date(2025, time.January, 5, 10, 30, 0, 0, time.UTC)

const longLine = "Los Algodones is a small border town known for its high concentration of dental clinics."

func TestExtractMetadataTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold wrapped", "# **Los Algodones Dentists: The Complete Guide**\n\nBody", "Los Algodones Dentists: The Complete Guide"},
		{"plain", "# Plain Title", "Plain Title"},
		{"later header", "Intro text\n\n## Section Heading", "Section Heading"},
		{"no header", "Just some text.", DefaultTitle},
		{"inner asterisks removed", "# Crowns *and* **Bridges**", "Crowns and Bridges"},
		{"level five is not a header", "##### Note\n# Real Title", "Real Title"},
		{"hashtag is not a header", "#dentalwork\n\n## Section Heading", "Section Heading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetadata(tt.input, fixedDate).Title)
		})
	}
}

func TestExtractMetadataDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "first long line after title",
			input:    "# Title\n\nShort.\n" + longLine,
			expected: longLine,
		},
		{
			name:     "long title line is skipped",
			input:    "# " + longLine + "\n\nToo short to describe.",
			expected: DefaultDescription,
		},
		{
			name:     "header and emphasis lines are skipped",
			input:    "# Title\n## " + longLine + "\n**" + longLine + "**\n*" + longLine + "\nThe real description line, with **bold** words that are kept.",
			expected: "The real description line, with bold words that are kept.",
		},
		{
			name:     "exactly fifty characters does not qualify",
			input:    "# Title\nXxxxxxxxx Xxxxxxxxx Xxxxxxxxx Xxxxxxxxx Xxxxxxxxxx",
			expected: DefaultDescription,
		},
		{
			name:     "image definitions are ignored",
			input:    "# Title\n\n[image2]: <data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==>",
			expected: DefaultDescription,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetadata(tt.input, fixedDate).Description)
		})
	}
}

func TestExtractMetadataDescriptionTruncated(t *testing.T) {
	line := strings.Repeat("Veneers are thin shells. ", 10)

	desc := ExtractMetadata("# Title\n"+line, fixedDate).Description

	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.Equal(t, 163, utf8.RuneCountInString(desc))
	assert.Equal(t, strings.TrimSpace(line)[:160]+"...", desc)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "añ...", Truncate("añyo", 2))
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"place name", "Visiting LOS ALGODONES for implants", core.CategoryDentalTourism},
		{"country", "Dentists in Mexico", core.CategoryDentalTourism},
		{"place beats travel", "A trip to Mexico", core.CategoryDentalTourism},
		{"travel", "Travel tips for patients", core.CategoryTravel},
		{"trip", "Plan your trip", core.CategoryTravel},
		{"default", "How to floss", core.CategoryDentalCare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.input))
		})
	}
}

func TestExtractMetadataDate(t *testing.T) {
	assert.Equal(t, "January 5, 2025", ExtractMetadata("", fixedDate).Date)

	conv := New(nil, WithClock(func() time.Time { return time.Date(2024, time.November, 21, 0, 0, 0, 0, time.UTC) }))
	assert.Equal(t, "November 21, 2024", conv.Metadata("# T").Date)
}
