// Package content inspects the site's content directory without rendering
// it. The generator owns rendering; we only verify that what it will consume
// is well formed: metadata headers parse, status values are recognized, and
// the markdown converts cleanly.
package content

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Page is a single content file with its parsed metadata header.
type Page struct {
	Path     string            // path relative to the content directory
	Metadata map[string]string // lowercased metadata keys
	Body     []byte            // markdown body after the header
}

// Status returns the page's declared status, empty when it inherits the
// configured default.
func (p *Page) Status() string { return p.Metadata["status"] }

// Title returns the page's declared title.
func (p *Page) Title() string { return p.Metadata["title"] }

// ParsePage reads a content file and splits its metadata header from the
// markdown body. The header is a run of "Key: value" lines terminated by the
// first blank line; continuation lines (leading whitespace) extend the
// previous value.
func ParsePage(root, relPath string) (*Page, error) {
	data, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	meta, body := splitMetadata(data)
	return &Page{Path: relPath, Metadata: meta, Body: body}, nil
}

func splitMetadata(data []byte) (map[string]string, []byte) {
	meta := map[string]string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var offset int
	var lastKey string
	for scanner.Scan() {
		line := scanner.Text()
		lineLen := len(scanner.Bytes()) + 1 // account for the newline

		if strings.TrimSpace(line) == "" {
			offset += lineLen
			break
		}

		if lastKey != "" && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			meta[lastKey] = meta[lastKey] + " " + strings.TrimSpace(line)
			offset += lineLen
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.ContainsAny(key, " \t") {
			// Not a metadata line: the header ended without a blank separator.
			break
		}
		lastKey = strings.ToLower(strings.TrimSpace(key))
		meta[lastKey] = strings.TrimSpace(value)
		offset += lineLen
	}

	if offset > len(data) {
		offset = len(data)
	}
	return meta, data[offset:]
}
