package convert

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// omittedImage is the reference key that is always dropped from output.
const omittedImage = "image1"

const imageStyle = "width: 100%; height: auto; margin: 20px 0;"

const placeholderStyle = "display: none; background: #f0f0f0; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px; color: #666;"

var (
	inlineImagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	referenceImagePattern = regexp.MustCompile(`!\[\]\[([^\]]+)\]`)
	numberPrefixPattern   = regexp.MustCompile(`^\d+_`)
	fileExtensionPattern  = regexp.MustCompile(`\.[A-Za-z0-9]+$`)
)

// AltText derives readable alt text from an image filename:
// "7_los-algodones-dental-crown-procedure.webp" becomes
// "Los Algodones Dental Crown Procedure". Only the first letter of each
// word is raised, so "2nd" stays "2nd".
func AltText(filename string) string {
	alt := numberPrefixPattern.ReplaceAllString(filename, "")
	alt = fileExtensionPattern.ReplaceAllString(alt, "")
	alt = strings.ReplaceAll(alt, "-", " ")

	upper := cases.Upper(language.English)
	words := strings.Split(alt, " ")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		words[i] = upper.String(string(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// renderImages replaces inline and reference-style images in the document.
func (c *Converter) renderImages(doc string) string {
	doc = inlineImagePattern.ReplaceAllString(doc,
		`<img src="${2}" alt="${1}" class="blog-image" style="`+imageStyle+`">`)

	return referenceImagePattern.ReplaceAllStringFunc(doc, func(match string) string {
		key := referenceImagePattern.FindStringSubmatch(match)[1]
		return c.referenceImage(key)
	})
}

func (c *Converter) referenceImage(key string) string {
	if key == omittedImage {
		return ""
	}

	file, ok := c.images.Lookup(key)
	if !ok {
		c.logger.Warn("no mapping found for image", "image", key)
		return fmt.Sprintf(`<div class="image-placeholder" style="%s">Image: %s</div>`, placeholderStyle, key)
	}

	src := path.Join(c.assetDir, file)
	return fmt.Sprintf(`<img src="%s" alt="%s" class="blog-image" style="%s" onerror="this.style.display='none';">`,
		src, AltText(file), imageStyle)
}
