package convert

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// continuationMaxLength is the length under which a line is always treated
// as a soft-wrapped continuation of the paragraph before it.
const continuationMaxLength = 50

// headerPatterns are applied deepest level first so "## x" is never read as "# x".
var headerPatterns = []struct {
	pattern *regexp.Regexp
	tag     string
}{
	{regexp.MustCompile(`(?m)^#### \*{0,4}(.*?)\*{0,4}$`), "h4"},
	{regexp.MustCompile(`(?m)^### \*{0,4}(.*?)\*{0,4}$`), "h3"},
	{regexp.MustCompile(`(?m)^## \*{0,4}(.*?)\*{0,4}$`), "h2"},
	{regexp.MustCompile(`(?m)^# \*{0,4}(.*?)\*{0,4}$`), "h1"},
}

var (
	blockquotePattern = regexp.MustCompile(`(?m)^> (.+)$`)
	dashRulePattern   = regexp.MustCompile(`(?m)^---$`)
	starRulePattern   = regexp.MustCompile(`(?m)^\*\*\*$`)

	blockSeparator  = regexp.MustCompile(`\n\s*\n`)
	renderedPattern = regexp.MustCompile(`^<(h[1-6]|blockquote|hr)`)

	orderedBlockPattern   = regexp.MustCompile(`(?m)^\d+\.\s`)
	orderedItemPattern    = regexp.MustCompile(`^(\d+)\.\s(.+)$`)
	unorderedBlockPattern = regexp.MustCompile(`(?m)^[-*+]\s`)
	unorderedItemPattern  = regexp.MustCompile(`^[-*+]\s(.+)$`)

	codeFencePattern = regexp.MustCompile("(?s)```(\\w+)?\\n?(.*?)```")

	lowercaseStartPattern    = regexp.MustCompile(`^[a-z]`)
	continuationStartPattern = regexp.MustCompile(`^(and|or|but|the|a|an|in|on|at|to|for|of|with|by)`)
)

const hrTag = `<hr class="mobile-hr">`

// renderDocument runs the whole-document passes (headers, images,
// blockquotes, rules) and then renders each blank-line-delimited block.
func (c *Converter) renderDocument(doc string) string {
	for _, h := range headerPatterns {
		doc = h.pattern.ReplaceAllString(doc, "<"+h.tag+">${1}</"+h.tag+">")
	}

	doc = c.renderImages(doc)

	doc = blockquotePattern.ReplaceAllStringFunc(doc, func(line string) string {
		content := blockquotePattern.FindStringSubmatch(line)[1]
		return `<blockquote class="mobile-blockquote"><p>` + FormatInline(content) + `</p></blockquote>`
	})

	doc = dashRulePattern.ReplaceAllString(doc, hrTag)
	doc = starRulePattern.ReplaceAllString(doc, hrTag)

	var out []string
	for _, block := range SplitBlocks(doc) {
		out = append(out, renderBlock(block)...)
	}
	return strings.Join(out, "\n\n")
}

// SplitBlocks splits text on blank-line runs, dropping empty blocks.
// Each returned block is trimmed.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, block := range blockSeparator.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// renderBlock classifies a block and renders it. Paragraph blocks may
// render to several paragraphs.
func renderBlock(block string) []string {
	if renderedPattern.MatchString(block) {
		return []string{block}
	}

	if orderedBlockPattern.MatchString(block) {
		return []string{renderList(block, orderedItemPattern, "ol")}
	}

	if unorderedBlockPattern.MatchString(block) {
		return []string{renderList(block, unorderedItemPattern, "ul")}
	}

	if strings.HasPrefix(block, "```") {
		if m := codeFencePattern.FindStringSubmatch(block); m != nil {
			return []string{fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, m[1], m[2])}
		}
	}

	if table, ok := renderTable(block); ok {
		return []string{table}
	}

	if strings.HasPrefix(block, "<") {
		return []string{block}
	}
	return renderParagraphs(block)
}

// renderList builds a list from marker lines; non-marker lines continue the
// open item. Lines before the first marker have no item to join and are dropped.
func renderList(block string, item *regexp.Regexp, tag string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ` class="mobile-list">`)

	current := ""
	inList := false
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if m := item.FindStringSubmatch(line); m != nil {
			if current != "" {
				writeListItem(&b, current)
			}
			current = m[len(m)-1]
			inList = true
		} else if line != "" && inList {
			current += " " + line
		}
	}
	if current != "" {
		writeListItem(&b, current)
	}

	b.WriteString("</" + tag + ">")
	return b.String()
}

func writeListItem(b *strings.Builder, text string) {
	b.WriteString("<li>")
	b.WriteString(FormatInline(strings.TrimSpace(text)))
	b.WriteString("</li>")
}

// renderTable renders a block as a table when it contains '|' and its
// second line is a separator row.
func renderTable(block string) (string, bool) {
	if !strings.Contains(block, "|") {
		return "", false
	}
	lines := strings.Split(block, "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "---") {
		return "", false
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range SplitCells(lines[0]) {
		b.WriteString("<th>" + FormatInline(cell) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	for _, line := range lines[2:] {
		cells := SplitCells(line)
		if len(cells) == 0 {
			continue
		}
		b.WriteString("<tr>")
		for _, cell := range cells {
			b.WriteString("<td>" + FormatInline(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table>")
	return b.String(), true
}

// SplitCells splits a table row on '|' and trims each cell. Empty cells at
// the start and end of the row (from outer pipes) are discarded.
func SplitCells(row string) []string {
	parts := strings.Split(row, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// renderParagraphs emits one paragraph for a single-line block. Multi-line
// blocks are merged greedily: a line continues the current paragraph when
// it starts lowercase, starts with one of the continuation prefixes, or is
// shorter than continuationMaxLength; any other line opens a new paragraph.
func renderParagraphs(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 1 {
		return []string{paragraph(lines[0])}
	}

	var out []string
	content := ""
	for i, line := range lines {
		if i > 0 && IsContinuation(line) {
			content += " " + line
			continue
		}
		if content != "" {
			out = append(out, paragraph(content))
		}
		content = line
	}
	if content != "" {
		out = append(out, paragraph(content))
	}
	return out
}

// IsContinuation reports whether line reads as a soft-wrapped continuation
// of the previous line. The prefix check is a plain prefix match, so any
// line starting with "a" qualifies.
func IsContinuation(line string) bool {
	return lowercaseStartPattern.MatchString(line) ||
		continuationStartPattern.MatchString(strings.ToLower(line)) ||
		utf8.RuneCountInString(line) < continuationMaxLength
}

func paragraph(content string) string {
	return `<p class="mobile-paragraph">` + FormatInline(content) + `</p>`
}
