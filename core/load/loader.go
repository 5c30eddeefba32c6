// Package load implements the core.Loader interface.
// Documents are read over HTTP(S) or from the local filesystem,
// depending on the location's scheme.
package load

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const defaultUserAgent = "blogpipe/1.0 (https://github.com/gaurav-prasanna/blogpipe)"

// FetchError reports a non-success response status for a document.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load markdown file: %d", e.StatusCode)
}

// HTTPLoader loads markdown documents via HTTP GET.
// No timeout is applied; bound latency through the context.
type HTTPLoader struct {
	client *http.Client
}

// NewHTTP creates an HTTPLoader. A nil client selects http.DefaultClient.
func NewHTTP(client *http.Client) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{client: client}
}

// Load retrieves the body of the given URL as text. Transport errors are
// returned unchanged; non-2xx responses yield a *FetchError.
func (l *HTTPLoader) Load(ctx context.Context, location string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/markdown,text/plain,*/*")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: location, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FileLoader loads markdown documents from disk, relative to Root.
type FileLoader struct {
	Root string
}

// NewFile creates a FileLoader rooted at root ("" means the working directory).
func NewFile(root string) *FileLoader {
	return &FileLoader{Root: root}
}

// Load reads the document at location. Filesystem errors are returned unchanged.
func (l *FileLoader) Load(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := strings.TrimPrefix(location, "file://")
	if l.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AutoLoader dispatches to HTTP for http(s) locations and to the
// filesystem for everything else.
type AutoLoader struct {
	HTTP *HTTPLoader
	File *FileLoader
}

// New creates an AutoLoader with default HTTP and file loaders.
func New() *AutoLoader {
	return &AutoLoader{HTTP: NewHTTP(nil), File: NewFile("")}
}

// Load implements core.Loader.
func (l *AutoLoader) Load(ctx context.Context, location string) (string, error) {
	if IsRemote(location) {
		return l.HTTP.Load(ctx, location)
	}
	return l.File.Load(ctx, location)
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	parsed, err := url.Parse(location)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
