// Package page patches a blog page with a converted post.
//
// The Updater is the only side-effecting stage of the pipeline: it takes
// the fragment and metadata produced by the converter and writes them into
// fixed locations of a parsed HTML page. Every location except the content
// mount point is optional and skipped when absent.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/blogpipe/core"
	"github.com/gaurav-prasanna/blogpipe/internal/logger"
)

// ErrContainerMissing is returned by Update when the mount point is not in
// the page. The page is left untouched.
var ErrContainerMissing = errors.New("content container not found")

// FallbackMessage is shown in the mount point when a page view fails.
const FallbackMessage = "Unable to load blog content. Please refresh the page to try again."

// Selectors for the optional page locations.
const (
	SelectorTitle           = "title"
	SelectorDescription     = `meta[name="description"]`
	SelectorOGTitle         = `meta[property="og:title"]`
	SelectorOGDescription   = `meta[property="og:description"]`
	SelectorHeading         = ".blog-post-text-title-main"
	SelectorCategory        = ".blog-container-ind-tag"
	SelectorDate            = ".blog-container-ind-date"
	SelectorCover           = ".blog-post-ind-image-main-card-copy"
	SelectorLoading         = "#loading-state"
	SelectorFooterCopyright = ".footer-link"
)

var copyrightYear = regexp.MustCompile(`© \d{4}`)

// CoverImage is the hero image written to the cover element.
type CoverImage struct {
	Src string
	Alt string
}

// Updater writes posts into pages.
type Updater struct {
	mount  string
	cover  CoverImage
	logger core.Logger
	now    func() time.Time
}

// Option configures an Updater.
type Option func(*Updater)

// WithCoverImage sets the image applied to the cover element.
// An empty Src leaves the cover alone.
func WithCoverImage(cover CoverImage) Option {
	return func(u *Updater) { u.cover = cover }
}

// WithLogger sets the logger for cover image updates.
func WithLogger(l core.Logger) Option {
	return func(u *Updater) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithClock sets the time source for the footer year.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		if now != nil {
			u.now = now
		}
	}
}

// New creates an Updater inserting content into the element matched by
// mount, e.g. "#blog-content".
func New(mount string, opts ...Option) *Updater {
	u := &Updater{
		mount:  mount,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Mount returns the mount point selector.
func (u *Updater) Mount() string {
	return u.mount
}

// Update writes meta into the head and on-page metadata elements, replaces
// the mount point content with fragment and removes any h1 from it.
// It returns an error wrapping ErrContainerMissing, and changes nothing,
// if the mount point does not exist.
func (u *Updater) Update(doc *goquery.Document, fragment string, meta core.Metadata) error {
	container := doc.Find(u.mount).First()
	if container.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrContainerMissing, u.mount)
	}

	u.updateMetadata(doc, meta)
	u.updateCover(doc)

	container.SetHtml(fragment)
	container.Find("h1").Remove()

	doc.Find(SelectorLoading).SetAttr("style", "display: none;")
	u.updateFooterYear(doc)
	return nil
}

func (u *Updater) updateMetadata(doc *goquery.Document, meta core.Metadata) {
	doc.Find(SelectorTitle).First().SetText(meta.Title)
	doc.Find(SelectorDescription).First().SetAttr("content", meta.Description)
	doc.Find(SelectorOGTitle).First().SetAttr("content", meta.Title)
	doc.Find(SelectorOGDescription).First().SetAttr("content", meta.Description)

	doc.Find(SelectorHeading).First().SetText(meta.Title)
	doc.Find(SelectorCategory).First().SetText(meta.Category)
	doc.Find(SelectorDate).First().SetText(meta.Date)
}

func (u *Updater) updateCover(doc *goquery.Document) {
	if u.cover.Src == "" {
		return
	}
	img := doc.Find(SelectorCover).First()
	if img.Length() == 0 {
		return
	}
	if src, _ := img.Attr("src"); strings.Contains(src, path.Base(u.cover.Src)) {
		return
	}
	img.SetAttr("src", u.cover.Src)
	img.SetAttr("alt", u.cover.Alt)
	u.logger.Debug("cover image updated", "src", u.cover.Src)
}

func (u *Updater) updateFooterYear(doc *goquery.Document) {
	footer := doc.Find(SelectorFooterCopyright).First()
	text := footer.Text()
	if !strings.Contains(text, "©") {
		return
	}
	year := strconv.Itoa(u.now().Year())
	footer.SetText(copyrightYear.ReplaceAllString(text, "© "+year))
}

// ShowError replaces the mount point content with an error notice for err.
// It reports whether the mount point existed.
func (u *Updater) ShowError(doc *goquery.Document, err error) bool {
	notice := `<p style="color: red; text-align: center; padding: 40px;">Error loading blog content: ` +
		html.EscapeString(err.Error()) + `<br>Please check the logs for more details.</p>`
	return u.show(doc, notice)
}

// ShowMessage replaces the mount point content with a neutral notice.
// It reports whether the mount point existed.
func (u *Updater) ShowMessage(doc *goquery.Document, message string) bool {
	notice := `<p style="text-align: center; padding: 40px; color: #666;">` +
		html.EscapeString(message) + `</p>`
	return u.show(doc, notice)
}

func (u *Updater) show(doc *goquery.Document, notice string) bool {
	container := doc.Find(u.mount).First()
	if container.Length() == 0 {
		return false
	}
	container.SetHtml(notice)
	return true
}

// Parse parses a page template.
func Parse(template []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(template))
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return doc, nil
}

// Render serializes a page, doctype included.
func Render(doc *goquery.Document) ([]byte, error) {
	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing page: %w", err)
	}
	return []byte(out), nil
}
