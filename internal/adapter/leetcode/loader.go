package leetcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"leetpush/internal/domain/ports"
)

const (
	maxPageSize     = 4 << 20
	editorSuffix    = ".editor.json"
	pageUserAgent   = "Mozilla/5.0 (compatible; leetpush/1.0)"
	defaultPageSite = "https://leetcode.com"
)

// Loader turns a page reference (saved HTML file or problem URL) into a Page.
type Loader struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewLoader creates a Loader whose HTTP fetches use the given timeout.
func NewLoader(timeout time.Duration, logger ports.Logger) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Load reads the page behind ref. editorStatePath is optional; for file refs a sibling
// "<file>.editor.json" is picked up automatically.
func (l *Loader) Load(ctx context.Context, ref, editorStatePath string) (*Page, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("empty page reference")
	}

	editor, err := l.loadEditor(ctx, ref, editorStatePath)
	if err != nil {
		return nil, err
	}

	if isRemote(ref) {
		return l.fetch(ctx, ref, editor)
	}
	return l.readFile(ref, editor)
}

func (l *Loader) fetch(ctx context.Context, ref string, editor EditorState) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Referer", defaultPageSite)
	req.Header.Set("User-Agent", pageUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	pageURL := ref
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL.String()
	}
	return ParsePage(io.LimitReader(resp.Body, maxPageSize), pageURL, editor)
}

func (l *Loader) readFile(path string, editor EditorState) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	page, err := ParsePage(bytes.NewReader(data), "", editor)
	if err != nil {
		return nil, err
	}

	if canonical := canonicalURL(page.Doc); canonical != "" {
		if u, err := url.Parse(canonical); err == nil && u.IsAbs() {
			page.URL = u
			return page, nil
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	page.URL = &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return page, nil
}

func (l *Loader) loadEditor(ctx context.Context, ref, explicit string) (EditorState, error) {
	if explicit != "" {
		editor, err := LoadEditorState(explicit)
		if err != nil {
			return nil, err
		}
		return editor, nil
	}
	if isRemote(ref) {
		return nil, nil
	}

	sibling := ref + editorSuffix
	editor, err := LoadEditorState(sibling)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && l.logger != nil {
			l.logger.Warn(ctx, "ignoring unreadable editor state", "path", sibling, "error", err)
		}
		return nil, nil
	}
	return editor, nil
}

func isRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
