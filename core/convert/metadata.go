package convert

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gaurav-prasanna/blogpipe/core"
)

const (
	// DefaultTitle is used when the document has no header line.
	DefaultTitle = "Blog Post"
	// DefaultDescription is used when no line qualifies as a description.
	DefaultDescription = "Comprehensive dental care information and guidance for patients seeking quality treatment."

	descriptionMinLength = 50
	descriptionMaxLength = 160

	// DateLayout formats dates as "January 5, 2025".
	DateLayout = "January 2, 2006"
)

var (
	// Same header shapes the renderer turns into h1-h4.
	headerLinePattern = regexp.MustCompile(`^#{1,4} (.*)$`)
	asteriskRun       = regexp.MustCompile(`\*+`)
	hashRun           = regexp.MustCompile(`#+`)
)

// categoryRules are checked in order; the first rule with a keyword present wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{core.CategoryDentalTourism, []string{"los algodones", "mexico"}},
	{core.CategoryTravel, []string{"travel", "trip"}},
}

// ExtractMetadata derives the post metadata from raw markdown. The date is
// taken from now, not from the content.
func ExtractMetadata(markdown string, now time.Time) core.Metadata {
	lines := strings.Split(Preprocess(markdown), "\n")

	title, titleIdx := extractTitle(lines)

	return core.Metadata{
		Title:       title,
		Description: extractDescription(lines[titleIdx+1:]),
		Category:    Categorize(markdown),
		Date:        now.Format(DateLayout),
	}
}

// extractTitle returns the first header line's text with asterisks removed,
// and its index. Without a header it returns DefaultTitle and -1.
func extractTitle(lines []string) (string, int) {
	for i, line := range lines {
		m := headerLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		title := strings.TrimSpace(asteriskRun.ReplaceAllString(m[1], ""))
		if title != "" {
			return title, i
		}
	}
	return DefaultTitle, -1
}

func extractDescription(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "*") {
			continue
		}
		if utf8.RuneCountInString(line) <= descriptionMinLength {
			continue
		}
		clean := strings.TrimSpace(hashRun.ReplaceAllString(asteriskRun.ReplaceAllString(line, ""), ""))
		return Truncate(clean, descriptionMaxLength)
	}
	return DefaultDescription
}

// Truncate shortens s to max runes, appending "..." when anything was cut.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// Categorize assigns a category by keyword scan over the lowercased document.
func Categorize(markdown string) string {
	content := strings.ToLower(markdown)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(content, keyword) {
				return rule.category
			}
		}
	}
	return core.CategoryDentalCare
}
