package content

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// Lint converts each page's markdown body to HTML to surface malformed
// content before the external generator chokes on it. Returned issues extend
// any already present in the result.
func Lint(result *ScanResult) []Issue {
	var issues []Issue
	md := goldmark.New()
	for _, page := range result.Pages {
		var buf bytes.Buffer
		if err := md.Convert(page.Body, &buf); err != nil {
			issues = append(issues, Issue{Path: page.Path, Message: fmt.Sprintf("markdown conversion failed: %v", err)})
		}
	}
	return issues
}

// ExtractExternalLinks converts the pages to HTML and collects absolute
// http(s) link destinations, deduplicated, for link verification.
func ExtractExternalLinks(result *ScanResult) ([]string, error) {
	md := goldmark.New()
	seen := map[string]bool{}
	var links []string

	for _, page := range result.Pages {
		var buf bytes.Buffer
		if err := md.Convert(page.Body, &buf); err != nil {
			continue // conversion failures are reported by Lint
		}
		doc, err := html.Parse(&buf)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse converted HTML: %w", page.Path, err)
		}

		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode {
				for _, attr := range n.Attr {
					if attr.Key != "href" && attr.Key != "src" {
						continue
					}
					if !isExternal(attr.Val) || seen[attr.Val] {
						continue
					}
					seen[attr.Val] = true
					links = append(links, attr.Val)
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(doc)
	}
	return links, nil
}

func isExternal(raw string) bool {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
