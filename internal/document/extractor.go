package document

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnsupportedFormat is returned for file types other than pdf/docx/txt.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrExtraction is returned when document bytes cannot be decoded to text.
	ErrExtraction = errors.New("failed to extract document text")
)

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"doc":  "application/msword",
}

// Extractor converts uploaded document bytes into cleaned plain text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes PDF/DOCX/TXT bytes to UTF-8 text and cleans it for
// downstream pattern matching.
func (e *Extractor) Extract(data []byte, fileType string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), "."))

	if ext == "txt" {
		return Clean(string(data)), nil
	}

	mime, ok := mimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileType)
	}

	res, err := docconv.Convert(bytes.NewReader(data), mime, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return Clean(res.Body), nil
}

var (
	zeroWidthRe  = regexp.MustCompile("[\u200b\u200c\u200d\ufeff]")
	horizSpaceRe = regexp.MustCompile(`[ \t\f\v]+`)
	newlineRunRe = regexp.MustCompile(`[\r\n]+`)
)

// Clean normalizes extracted text: Unicode NFKC form, zero-width characters
// removed, horizontal whitespace collapsed, newline runs folded to one.
func Clean(text string) string {
	text = norm.NFKC.String(text)
	text = zeroWidthRe.ReplaceAllString(text, "")
	text = horizSpaceRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
