package leetcode

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	selQuestionTitle = cascadia.MustCompile(`div[data-cy="question-title"]`)
	selTitleStyle    = cascadia.MustCompile(`.css-v3d350`)
	selDocumentTitle = cascadia.MustCompile(`title`)

	selLanguage     = cascadia.MustCompile(`[data-cy="lang-select"], .css-jspxo5`)
	selMonacoEditor = cascadia.MustCompile(`.monaco-editor`)

	selDifficultyAttr  = cascadia.MustCompile(`[data-difficulty]`)
	selDifficultyStyle = cascadia.MustCompile(`.css-10o4wqw`)
	selEasyMarker      = cascadia.MustCompile(`.text-success, .text-olive, .text-green`)
	selMediumMarker    = cascadia.MustCompile(`.text-warning, .text-yellow`)
	selHardMarker      = cascadia.MustCompile(`.text-danger, .text-pink, .text-red`)

	selTags = cascadia.MustCompile(`.tag__1z0V, .css-10o4wqw`)

	selNextData       = cascadia.MustCompile(`script#__NEXT_DATA__`)
	selCodeMirrorCode = cascadia.MustCompile(`.CodeMirror-code`)
	selCodeMirrorLine = cascadia.MustCompile(`.CodeMirror-line`)
	selCodeBlock      = cascadia.MustCompile(`pre, code`)
	selSolutionTab    = cascadia.MustCompile(`.tab, .css-1rdgofi`)
	selTabContent     = cascadia.MustCompile(`.tab-content, .css-1ykbugg`)

	selCanonical = cascadia.MustCompile(`link[rel="canonical"]`)
	selOGURL     = cascadia.MustCompile(`meta[property="og:url"]`)
)

// textContent concatenates every descendant text node, like the DOM property of the same name.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var builder strings.Builder
	collectText(n, &builder)
	return builder.String()
}

func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.TextNode {
		builder.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// closest walks from n up through its ancestors and returns the first match.
func closest(n *html.Node, sel cascadia.Selector) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && sel.Match(cur) {
			return cur
		}
	}
	return nil
}
