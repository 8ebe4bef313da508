package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/gabriel-vasile/mimetype"
	"github.com/yosssi/gohtml"
)

// Prettify indents a JSON, SVG/XML or HTML document for terminal output.
// Input in any other format is returned unchanged.
func Prettify(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []byte{}, nil
	}

	contentType := mimetype.Detect(trimmed)

	switch {
	case contentType.Is("application/json"):
		var out bytes.Buffer
		if err := json.Indent(&out, trimmed, "", "  "); err != nil {
			return nil, fmt.Errorf("indenting json: %w", err)
		}
		return out.Bytes(), nil

	case contentType.Is("image/svg+xml"), strings.Contains(contentType.String(), "xml"):
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(trimmed); err != nil {
			return nil, fmt.Errorf("reading xml: %w", err)
		}
		return writeDocument(doc)

	case contentType.Is("text/html"):
		return gohtml.FormatBytes(trimmed), nil
	}

	return trimmed, nil
}
