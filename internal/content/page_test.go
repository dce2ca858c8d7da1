package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMetadataBasic(t *testing.T) {
	data := []byte("Title: Hello World\nStatus: draft\nTags: go, blog\n\nBody text here.\n")
	meta, body := splitMetadata(data)

	assert.Equal(t, "Hello World", meta["title"])
	assert.Equal(t, "draft", meta["status"])
	assert.Equal(t, "go, blog", meta["tags"])
	assert.Equal(t, "Body text here.\n", string(body))
}

func TestSplitMetadataContinuationLine(t *testing.T) {
	data := []byte("Title: Hello\nSummary: first part\n    second part\n\nBody\n")
	meta, _ := splitMetadata(data)
	assert.Equal(t, "first part second part", meta["summary"])
}

func TestSplitMetadataNoHeader(t *testing.T) {
	data := []byte("# Just Markdown\n\nNo metadata at all.\n")
	meta, body := splitMetadata(data)
	assert.Empty(t, meta)
	assert.Equal(t, string(data), string(body))
}

func TestSplitMetadataHeaderOnly(t *testing.T) {
	data := []byte("Title: Only Header\nStatus: published\n")
	meta, body := splitMetadata(data)
	assert.Equal(t, "Only Header", meta["title"])
	assert.Equal(t, "published", meta["status"])
	assert.Empty(t, body)
}

func TestPageAccessors(t *testing.T) {
	p := &Page{Metadata: map[string]string{"title": "T", "status": "hidden"}}
	assert.Equal(t, "T", p.Title())
	assert.Equal(t, "hidden", p.Status())
}
