package convert

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	linkPattern           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codeSpanPattern       = regexp.MustCompile("`([^`]+)`")
	tagPattern            = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	strongEmphasisPattern = regexp.MustCompile(`\*\*\*\*(.*?)\*\*\*\*`)
	strongPattern         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	underscoreEmPattern   = regexp.MustCompile(`_([^_\n]+?)_`)
	strikePattern         = regexp.MustCompile(`~~(.*?)~~`)
	placeholderPattern    = regexp.MustCompile(`\x00([0-9]+)\x00`)
)

// FormatInline replaces inline markdown spans in text with HTML.
//
// Order: links, code spans, bold, italic, strikethrough. Code spans and any
// HTML tags present after the link pass are set aside before the emphasis
// passes and restored afterwards, so their content and attributes are never
// rewritten.
func FormatInline(text string) string {
	formatted := linkPattern.ReplaceAllString(text, `<a href="${2}" target="_blank">${1}</a>`)

	var held stash
	formatted = codeSpanPattern.ReplaceAllStringFunc(formatted, func(span string) string {
		return held.put("<code>" + span[1:len(span)-1] + "</code>")
	})
	formatted = tagPattern.ReplaceAllStringFunc(formatted, held.put)

	formatted = strongEmphasisPattern.ReplaceAllString(formatted, "<strong>${1}</strong>")
	formatted = strongPattern.ReplaceAllString(formatted, "<strong>${1}</strong>")

	formatted = emphasizeAsterisks(formatted)
	formatted = underscoreEmPattern.ReplaceAllString(formatted, "<em>${1}</em>")

	formatted = strikePattern.ReplaceAllString(formatted, "<del>${1}</del>")

	return held.restore(formatted)
}

// emphasizeAsterisks wraps *text* in <em>. A '*' directly preceded or
// followed by another '*' never opens or closes emphasis, so leftover bold
// markers are not half-consumed.
func emphasizeAsterisks(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '*' || (i > 0 && s[i-1] == '*') {
			b.WriteByte(s[i])
			continue
		}
		end := strings.IndexAny(s[i+1:], "*\n")
		if end > 0 {
			closing := i + 1 + end
			if s[closing] == '*' && (closing+1 == len(s) || s[closing+1] != '*') {
				b.WriteString("<em>")
				b.WriteString(s[i+1 : closing])
				b.WriteString("</em>")
				i = closing
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// stash holds text segments replaced by NUL-delimited placeholders.
type stash struct {
	items []string
}

func (s *stash) put(text string) string {
	s.items = append(s.items, text)
	return "\x00" + strconv.Itoa(len(s.items)-1) + "\x00"
}

func (s *stash) restore(text string) string {
	if len(s.items) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(ph string) string {
		idx, err := strconv.Atoi(ph[1 : len(ph)-1])
		if err != nil || idx >= len(s.items) {
			return ph
		}
		return s.items[idx]
	})
}
