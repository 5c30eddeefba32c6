package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.WarnLevel)

	l.DocumentLoaded("post.md", 120)
	assert.Empty(t, buf.String())

	l.RenderFailed("post.md", errors.New("failed to load markdown file: 404"))
	out := buf.String()
	assert.Contains(t, out, "error loading and rendering blog")
	assert.Contains(t, out, "post.md")
	assert.Contains(t, out, "404")
}

func TestHelpersWriteKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.MetadataExtracted("Crowns", "Dental Care", "January 5, 2025")
	l.FragmentRendered("post.md", 2048)
	l.ContentInserted("#blog-content")

	out := buf.String()
	assert.Contains(t, out, "metadata extracted")
	assert.Contains(t, out, "Crowns")
	assert.Contains(t, out, "2048")
	assert.Contains(t, out, "#blog-content")
}

func TestNewFromConfigLevels(t *testing.T) {
	assert.Equal(t, log.DebugLevel, NewFromConfig("debug").GetLevel())
	assert.Equal(t, log.WarnLevel, NewFromConfig("WARN").GetLevel())
	assert.Equal(t, log.InfoLevel, NewFromConfig("loud").GetLevel())
}
