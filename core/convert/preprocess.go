package convert

import "regexp"

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Reference-image definitions, e.g. "[image3]: <data:image/png;base64,...>".
	// The data form is removed first since its payload may be very large.
	dataImageDefinition = regexp.MustCompile(`(?m)^\[image\d+\]:[ \t]*<data:image/[^>]+>\n?`)
	imageDefinition     = regexp.MustCompile(`(?m)^\[image\d+\]:[ \t]*.*(?:\n|$)`)
)

// Preprocess prepares raw markdown for block conversion.
func Preprocess(markdown string) string {
	return StripImageDefinitions(NormalizeLineEndings(markdown))
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// StripImageDefinitions removes "[imageN]: ..." reference definition lines.
// Only definitions starting a line match, and only that line and its own
// newline are consumed.
func StripImageDefinitions(content string) string {
	content = dataImageDefinition.ReplaceAllString(content, "")
	return imageDefinition.ReplaceAllString(content, "")
}
