package leetcode

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"leetpush/internal/domain/model"
)

// minCodeBlockLength separates real solutions from short inline snippets.
const minCodeBlockLength = 50

// CodeSource is one place the submitted code may be read from.
type CodeSource interface {
	CurrentCode() (string, bool)
}

// CodeSources lists the code locations of a page in lookup order.
func CodeSources(p *Page) []CodeSource {
	return []CodeSource{
		nextDataSource{page: p},
		editorModelSource{editor: p.Editor},
		codeMirrorSource{page: p},
		preBlockSource{page: p},
		activeTabSource{page: p},
	}
}

// ExtractCode returns the first code found, or model.MissingCode.
func ExtractCode(p *Page) string {
	if p == nil {
		return model.MissingCode
	}
	for _, source := range CodeSources(p) {
		if code, ok := source.CurrentCode(); ok {
			return code
		}
	}
	return model.MissingCode
}

// nextDataSource reads the submission embedded in the Next.js page data.
type nextDataSource struct {
	page *Page
}

func (s nextDataSource) CurrentCode() (string, bool) {
	if s.page.Doc == nil {
		return "", false
	}
	script := selNextData.MatchFirst(s.page.Doc)
	if script == nil {
		return "", false
	}

	var data struct {
		Props struct {
			PageProps struct {
				SubmissionCode string `json:"submissionCode"`
			} `json:"pageProps"`
		} `json:"props"`
	}
	if err := json.Unmarshal([]byte(textContent(script)), &data); err != nil {
		return "", false
	}
	code := data.Props.PageProps.SubmissionCode
	return code, code != ""
}

// editorModelSource reads the first model of the live editor.
type editorModelSource struct {
	editor EditorState
}

func (s editorModelSource) CurrentCode() (string, bool) {
	if s.editor == nil {
		return "", false
	}
	models := s.editor.Models()
	if len(models) == 0 || models[0] == "" {
		return "", false
	}
	return models[0], true
}

// codeMirrorSource rebuilds code from the per-line nodes of the older editor.
type codeMirrorSource struct {
	page *Page
}

func (s codeMirrorSource) CurrentCode() (string, bool) {
	if s.page.Doc == nil {
		return "", false
	}
	editor := selCodeMirrorCode.MatchFirst(s.page.Doc)
	if editor == nil {
		return "", false
	}
	lines := selCodeMirrorLine.MatchAll(editor)
	if len(lines) == 0 {
		return "", false
	}
	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, textContent(line))
	}
	return strings.Join(texts, "\n"), true
}

// preBlockSource takes the first pre/code block long enough to be a solution.
type preBlockSource struct {
	page *Page
}

func (s preBlockSource) CurrentCode() (string, bool) {
	if s.page.Doc == nil {
		return "", false
	}
	for _, block := range selCodeBlock.MatchAll(s.page.Doc) {
		code := strings.TrimSpace(textContent(block))
		if utf8.RuneCountInString(code) > minCodeBlockLength {
			return code, true
		}
	}
	return "", false
}

// activeTabSource reads the code block under the selected solution tab.
type activeTabSource struct {
	page *Page
}

func (s activeTabSource) CurrentCode() (string, bool) {
	if s.page.Doc == nil {
		return "", false
	}
	for _, tab := range selSolutionTab.MatchAll(s.page.Doc) {
		if !isActiveTab(tab) {
			continue
		}
		container := closest(tab, selTabContent)
		if container == nil {
			continue
		}
		if block := selCodeBlock.MatchFirst(container); block != nil {
			return strings.TrimSpace(textContent(block)), true
		}
	}
	return "", false
}

func isActiveTab(tab *html.Node) bool {
	return hasClass(tab, "active") || attr(tab, "aria-selected") == "true"
}
