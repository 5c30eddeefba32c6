package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"https://example.com/blog/post.md", "example_com_blog_post"},
		{"https://example.com/", "example_com"},
		{"http://localhost:8080/URL_%20Los%20Algodones.md", "localhost_8080_URL__Los_Algodones"},
		{"URL_ Los Algodones - Pillar Topic.md", "URL__Los_Algodones___Pillar_Topic"},
		{"posts/travel-tips.md", "travel_tips"},
		{"file:///srv/posts/crowns.markdown", "crowns"},
		{"", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.location))
		})
	}
}

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("posts/travel-tips.md", []byte("<p>hi</p>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "travel_tips.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	w, err := New("")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, w.OutputDir)
}
