package leetcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpush/internal/domain/model"
)

func mustPage(t *testing.T, body, pageURL string) *Page {
	t.Helper()
	page, err := ParsePage(strings.NewReader(body), pageURL, nil)
	require.NoError(t, err)
	return page
}

func TestExtractTitleCascade(t *testing.T) {
	tests := []struct {
		name string
		html string
		url  string
		want string
	}{
		{
			name: "question title marker wins",
			html: `<html><head><title>1. Two Sum - LeetCode</title></head><body>
				<div class="css-v3d350">Style Title</div>
				<div data-cy="question-title">1. Two Sum</div></body></html>`,
			want: "1. Two Sum",
		},
		{
			name: "style hook before document title",
			html: `<html><head><title>1. Two Sum - LeetCode</title></head><body><div class="css-v3d350">Two Sum</div></body></html>`,
			want: "Two Sum",
		},
		{
			name: "document title stripped",
			html: `<html><head><title>42. Trapping Rain Water - LeetCode</title></head><body></body></html>`,
			want: "Trapping Rain Water",
		},
		{
			name: "empty marker falls through",
			html: `<html><head><title>Valid Anagram - LeetCode</title></head><body><div data-cy="question-title">  </div></body></html>`,
			want: "Valid Anagram",
		},
		{
			name: "url slug title cased",
			html: `<html><head></head><body></body></html>`,
			url:  "https://leetcode.com/problems/longest-palindromic-substring/description/",
			want: "Longest Palindromic Substring",
		},
		{
			name: "sentinel",
			html: `<html><body></body></html>`,
			url:  "https://leetcode.com/explore/",
			want: model.UnknownProblem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(mustPage(t, tt.html, tt.url)))
		})
	}
}

func TestParseDocumentTitle(t *testing.T) {
	title, ok := ParseDocumentTitle("42. Trapping Rain Water - LeetCode")
	require.True(t, ok)
	assert.Equal(t, "Trapping Rain Water", title)

	title, ok = ParseDocumentTitle("Two Sum")
	require.True(t, ok)
	assert.Equal(t, "Two Sum", title)

	_, ok = ParseDocumentTitle("   ")
	assert.False(t, ok)
}

func TestExtractLanguage(t *testing.T) {
	page := mustPage(t, `<body><button data-cy="lang-select"> Python3 </button><div class="monaco-editor" data-language="java"></div></body>`, "")
	assert.Equal(t, "Python3", ExtractLanguage(page))

	page = mustPage(t, `<body><div class="monaco-editor"></div><div class="monaco-editor" data-mode="cpp"></div></body>`, "")
	assert.Equal(t, "cpp", ExtractLanguage(page))

	page = mustPage(t, `<body><div class="css-jspxo5">Go</div></body>`, "")
	assert.Equal(t, "Go", ExtractLanguage(page))

	page = mustPage(t, `<body></body>`, "")
	assert.Equal(t, model.UnknownLanguage, ExtractLanguage(page))
}

func TestExtractDifficulty(t *testing.T) {
	tests := []struct {
		name string
		html string
		want model.Difficulty
	}{
		{"attribute value", `<div data-difficulty="MEDIUM"></div><span class="text-danger">x</span>`, model.DifficultyMedium},
		{"attribute element text", `<div data-difficulty>Easy</div>`, model.DifficultyEasy},
		{"style hook text", `<div class="css-10o4wqw">Hard</div>`, model.DifficultyHard},
		{"easy marker", `<span class="text-olive">Easy</span>`, model.DifficultyEasy},
		{"medium marker", `<span class="text-yellow">?</span>`, model.DifficultyMedium},
		{"hard marker", `<span class="label text-pink">?</span>`, model.DifficultyHard},
		{"unparseable element falls back to markers", `<div class="css-10o4wqw">Array</div><p class="text-red">!</p>`, model.DifficultyHard},
		{"unknown", `<p>nothing</p>`, model.DifficultyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDifficulty(mustPage(t, "<body>"+tt.html+"</body>", "")))
		})
	}
}

func TestExtractTags(t *testing.T) {
	page := mustPage(t, `<body>
		<a class="tag__1z0V"> Array </a>
		<a class="tag__1z0V"></a>
		<a class="tag__1z0V">Hash Table</a></body>`, "")
	assert.Equal(t, []string{"Array", "Hash Table"}, ExtractTags(page))

	assert.Empty(t, ExtractTags(mustPage(t, `<body></body>`, "")))
}

func TestExtractBuildsSnapshot(t *testing.T) {
	page := mustPage(t, `<html><head><title>1. Two Sum - LeetCode</title></head><body>
		<div data-cy="lang-select">Go</div>
		<div data-difficulty="Easy">Easy</div>
		<a class="tag__1z0V">Array</a>
		<pre>func twoSum(nums []int, target int) []int {
	return nil // placeholder body for the test case
}</pre></body></html>`, "https://leetcode.com/problems/two-sum/")

	snapshot := Extract(page)
	assert.Equal(t, "Two Sum", snapshot.Title)
	assert.Equal(t, "Go", snapshot.Language)
	assert.Equal(t, model.DifficultyEasy, snapshot.Difficulty)
	assert.Equal(t, []string{"Array"}, snapshot.Tags)
	assert.Contains(t, snapshot.SourceCode, "func twoSum")
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", snapshot.URL)

	details := ExtractDetails(page)
	assert.Empty(t, details.SourceCode)
	assert.Equal(t, snapshot.Title, details.Title)
}

func TestExtractNilPageNeverPanics(t *testing.T) {
	snapshot := Extract(nil)
	assert.Equal(t, model.UnknownProblem, snapshot.Title)
	assert.Equal(t, model.UnknownLanguage, snapshot.Language)
	assert.Equal(t, model.DifficultyUnknown, snapshot.Difficulty)
	assert.Equal(t, model.MissingCode, snapshot.SourceCode)
	assert.Empty(t, snapshot.URL)
}
