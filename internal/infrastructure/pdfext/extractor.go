// Package pdfext pulls the text layer out of drawing PDFs. It does no OCR
// and no layout analysis; scanned drawings without a text layer yield
// nothing.
package pdfext

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"rsc.io/pdf"

	"github.com/steelcheck/backend/internal/domain"
	"github.com/steelcheck/backend/pkg/logging"
)

// yLineEpsilon is the vertical distance, in PDF points, above which two text
// chunks belong to separate lines
const yLineEpsilon = 2.0

// Extractor reads the text layer of PDF drawings held in memory
type Extractor struct{}

// NewExtractor creates a new PDF text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts the text of every page inside the page window.
// The pdf package reports one chunk per glyph, so lines are rebuilt from
// chunk coordinates: a Y jump starts a new line, an X gap wider than the
// word-gap threshold becomes a space.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, pages domain.PageRange) (text string, err error) {
	// The pdf package panics on malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrUnreadablePDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadablePDF, err)
	}

	first, last, err := pageWindow(reader.NumPage(), pages)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for num := first; num <= last; num++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		writePageText(&buf, page.Content())
	}

	result := buf.String()
	if strings.TrimSpace(result) == "" {
		return "", domain.ErrNoTextContent
	}

	logging.Log.Debugf("[EXTRACT] pages %d-%d: %d chars", first, last, len(result))

	return result, nil
}

// pageWindow resolves a PageRange against the document's page count.
// Bounds are 1-based inclusive; zero leaves that end open. An End past the
// last page clamps, a Start past the last page is an error.
func pageWindow(numPages int, pages domain.PageRange) (int, int, error) {
	if pages.Start < 0 || pages.End < 0 || (pages.End > 0 && pages.Start > pages.End) {
		return 0, 0, fmt.Errorf("%w: start %d, end %d", domain.ErrPageRange, pages.Start, pages.End)
	}

	first := pages.Start
	if first == 0 {
		first = 1
	}
	if first > numPages {
		return 0, 0, fmt.Errorf("%w: start page %d of %d", domain.ErrPageRange, first, numPages)
	}

	last := pages.End
	if last == 0 || last > numPages {
		last = numPages
	}

	return first, last, nil
}

// writePageText rebuilds line-structured text from a page's glyph chunks
func writePageText(buf *bytes.Buffer, content pdf.Content) {
	if len(content.Text) == 0 {
		return
	}

	// Reading order: top to bottom, then left to right within a line.
	// PDF Y grows upward.
	chunks := make([]pdf.Text, len(content.Text))
	copy(chunks, content.Text)
	sort.SliceStable(chunks, func(i, j int) bool {
		if math.Abs(chunks[i].Y-chunks[j].Y) > yLineEpsilon {
			return chunks[i].Y > chunks[j].Y
		}
		return chunks[i].X < chunks[j].X
	})

	var lastY, lastEndX float64
	for i, chunk := range chunks {
		switch {
		case i == 0:
		case math.Abs(chunk.Y-lastY) > yLineEpsilon:
			buf.WriteByte('\n')
		case chunk.X-lastEndX > wordGap(chunk.FontSize):
			buf.WriteByte(' ')
		}
		buf.WriteString(chunk.S)
		lastY = chunk.Y
		lastEndX = chunk.X + chunk.W
	}
	buf.WriteByte('\n')
}

// wordGap is the horizontal gap treated as a word boundary. Kerning moves
// the cursor by far less than 0.3em; an actual space moves it by more.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}
	return 0.3 * fontSize
}

// structuralKeywords are terms expected somewhere in the text layer of an
// Australian structural or shop drawing
var structuralKeywords = []string{
	"ub", "uc", "wb", "shs", "rhs", "chs", "pfc", "ua", "ea", "angle", "channel",
	"beam", "column", "member", "size", "steel", "section", "mm", "metre", "meter",
	"tfb", "wc", "bt", "flat", "plate",
}

// HasStructuralContent reports whether extracted text looks like it came
// from a structural drawing at all. Used to warn about uploads that extract
// fine but are probably the wrong kind of document.
func HasStructuralContent(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range structuralKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
