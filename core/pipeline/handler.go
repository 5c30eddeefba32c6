package pipeline

import (
	"net/http"

	"github.com/gaurav-prasanna/blogpipe/core/page"
)

// Handler serves the blog page at "/". Each GET performs one page view of
// the document at location. Failed views are still answered with 200 and
// an inline notice, like a page that renders its own error state.
func (p *Pipeline) Handler(location string, template []byte, updater *page.Updater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		out, _ := p.Page(r.Context(), location, template, updater)
		if out == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(out)
		}
	})
}
