package leetcode

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"leetpush/internal/domain/model"
)

// strategy probes one location of the page for a field value.
type strategy[T any] func(p *Page) (T, bool)

// firstOf evaluates the strategies in order and returns the first defined result.
func firstOf[T any](p *Page, fallback T, strategies ...strategy[T]) T {
	if p == nil {
		p = &Page{}
	}
	for _, probe := range strategies {
		if v, ok := probe(p); ok {
			return v
		}
	}
	return fallback
}

var (
	titleStrategies      = []strategy[string]{titleFromQuestionHeader, titleFromStyleHook, titleFromDocumentTitle, titleFromURL}
	languageStrategies   = []strategy[string]{languageFromSelector, languageFromEditor}
	difficultyStrategies = []strategy[model.Difficulty]{difficultyFromElement, difficultyFromMarkers}
)

// Extract builds a best-effort snapshot of the page. Every field falls back to a sentinel
// value, so Extract never fails.
func Extract(p *Page) model.ProblemSnapshot {
	return model.ProblemSnapshot{
		Title:      ExtractTitle(p),
		Language:   ExtractLanguage(p),
		Difficulty: ExtractDifficulty(p),
		Tags:       ExtractTags(p),
		SourceCode: ExtractCode(p),
		URL:        p.Location(),
	}
}

// ExtractDetails is Extract without the code lookup.
func ExtractDetails(p *Page) model.ProblemSnapshot {
	return model.ProblemSnapshot{
		Title:      ExtractTitle(p),
		Language:   ExtractLanguage(p),
		Difficulty: ExtractDifficulty(p),
		Tags:       ExtractTags(p),
		URL:        p.Location(),
	}
}

func ExtractTitle(p *Page) string {
	return firstOf(p, model.UnknownProblem, titleStrategies...)
}

func ExtractLanguage(p *Page) string {
	return firstOf(p, model.UnknownLanguage, languageStrategies...)
}

func ExtractDifficulty(p *Page) model.Difficulty {
	return firstOf(p, model.DifficultyUnknown, difficultyStrategies...)
}

// ExtractTags returns the trimmed text of every tag element, in document order.
func ExtractTags(p *Page) []string {
	if p == nil || p.Doc == nil {
		return nil
	}
	tags := lo.Map(selTags.MatchAll(p.Doc), func(n *html.Node, _ int) string {
		return strings.TrimSpace(textContent(n))
	})
	return lo.Compact(tags)
}

func nonEmptyText(n *html.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	text := strings.TrimSpace(textContent(n))
	return text, text != ""
}

func titleFromQuestionHeader(p *Page) (string, bool) {
	if p.Doc == nil {
		return "", false
	}
	return nonEmptyText(selQuestionTitle.MatchFirst(p.Doc))
}

func titleFromStyleHook(p *Page) (string, bool) {
	if p.Doc == nil {
		return "", false
	}
	return nonEmptyText(selTitleStyle.MatchFirst(p.Doc))
}

// "42. Trapping Rain Water - LeetCode" -> "Trapping Rain Water"
var documentTitlePattern = regexp.MustCompile(`^(\d+\.\s)?(.*?)(\s-\s.*)?$`)

func titleFromDocumentTitle(p *Page) (string, bool) {
	if p.Doc == nil {
		return "", false
	}
	raw, ok := nonEmptyText(selDocumentTitle.MatchFirst(p.Doc))
	if !ok {
		return "", false
	}
	return ParseDocumentTitle(raw)
}

// ParseDocumentTitle strips the numeric prefix and site suffix from a page title.
func ParseDocumentTitle(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	match := documentTitlePattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	title := strings.TrimSpace(match[2])
	return title, title != ""
}

var slugTitleCaser = cases.Title(language.Und, cases.NoLower)

func titleFromURL(p *Page) (string, bool) {
	slug := Slug(p.URL)
	if slug == "" {
		return "", false
	}
	return slugTitleCaser.String(strings.ReplaceAll(slug, "-", " ")), true
}

func languageFromSelector(p *Page) (string, bool) {
	if p.Doc == nil {
		return "", false
	}
	return nonEmptyText(selLanguage.MatchFirst(p.Doc))
}

func languageFromEditor(p *Page) (string, bool) {
	if p.Doc == nil {
		return "", false
	}
	for _, editor := range selMonacoEditor.MatchAll(p.Doc) {
		if lang := strings.TrimSpace(attr(editor, "data-language")); lang != "" {
			return lang, true
		}
		if mode := strings.TrimSpace(attr(editor, "data-mode")); mode != "" {
			return mode, true
		}
	}
	return "", false
}

func difficultyFromElement(p *Page) (model.Difficulty, bool) {
	if p.Doc == nil {
		return "", false
	}
	if n := selDifficultyAttr.MatchFirst(p.Doc); n != nil {
		if d := model.ParseDifficulty(attr(n, "data-difficulty")); d != model.DifficultyUnknown {
			return d, true
		}
		if d := model.ParseDifficulty(textContent(n)); d != model.DifficultyUnknown {
			return d, true
		}
	}
	if n := selDifficultyStyle.MatchFirst(p.Doc); n != nil {
		if d := model.ParseDifficulty(textContent(n)); d != model.DifficultyUnknown {
			return d, true
		}
	}
	return "", false
}

func difficultyFromMarkers(p *Page) (model.Difficulty, bool) {
	if p.Doc == nil {
		return "", false
	}
	switch {
	case selEasyMarker.MatchFirst(p.Doc) != nil:
		return model.DifficultyEasy, true
	case selMediumMarker.MatchFirst(p.Doc) != nil:
		return model.DifficultyMedium, true
	case selHardMarker.MatchFirst(p.Doc) != nil:
		return model.DifficultyHard, true
	}
	return "", false
}
