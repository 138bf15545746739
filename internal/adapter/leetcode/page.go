package leetcode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// EditorState exposes the text models of a live code editor on the page.
type EditorState interface {
	Models() []string
}

// StaticEditor is an EditorState backed by a fixed list of model texts.
type StaticEditor []string

// Models returns the model texts in editor order.
func (s StaticEditor) Models() []string { return s }

// Page is a parsed problem page together with the address it was served from.
type Page struct {
	Doc    *html.Node
	URL    *url.URL
	Editor EditorState
}

// ParsePage parses an HTML document. pageURL may be empty when unknown.
func ParsePage(r io.Reader, pageURL string, editor EditorState) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	page := &Page{Doc: doc, Editor: editor}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, fmt.Errorf("parse page url: %w", err)
		}
		page.URL = u
	}
	return page, nil
}

// Location returns the absolute URL of the page, or "" when unknown.
func (p *Page) Location() string {
	if p == nil || p.URL == nil {
		return ""
	}
	return p.URL.String()
}

// LoadEditorState reads an editor dump of the form {"models": ["..."]}.
func LoadEditorState(path string) (StaticEditor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read editor state: %w", err)
	}

	var dump struct {
		Models []string `json:"models"`
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decode editor state: %w", err)
	}
	return StaticEditor(dump.Models), nil
}

// canonicalURL looks for the address a saved page was captured from.
func canonicalURL(doc *html.Node) string {
	if link := selCanonical.MatchFirst(doc); link != nil {
		if href := strings.TrimSpace(attr(link, "href")); href != "" {
			return href
		}
	}
	if meta := selOGURL.MatchFirst(doc); meta != nil {
		if content := strings.TrimSpace(attr(meta, "content")); content != "" {
			return content
		}
	}
	return ""
}
