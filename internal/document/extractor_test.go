package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract([]byte("data"), "xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.Extract([]byte("data"), ".png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor()

	got, err := e.Extract([]byte("hello   world\n\n\nbye"), "txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world\nbye", got)
}

func TestExtractAcceptsDottedExtension(t *testing.T) {
	e := NewExtractor()

	got, err := e.Extract([]byte("plain resume text"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", got)
}

func TestExtractMalformedPDF(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract([]byte("definitely not a pdf"), "pdf")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestCleanZeroWidthAndWhitespace(t *testing.T) {
	assert.Equal(t, "a b", Clean("a\u200b \u200b b"))
	assert.Equal(t, "line one\nline two", Clean("  line one\r\n\r\nline two  "))
	assert.Equal(t, "tabs spaced out", Clean("tabs\t\tspaced\t out"))
	assert.Equal(t, "", Clean(" \u200b \n "))
}
