// Package solution turns a problem snapshot into the file that is published:
// its repository path, its text and its transport encoding.
package solution

import (
	"strings"

	"leetpush/internal/domain/model"
)

// DefaultExtension is used for languages missing from the extension table.
const DefaultExtension = "txt"

var extensions = map[string]string{
	"python":     "py",
	"python3":    "py",
	"java":       "java",
	"javascript": "js",
	"typescript": "ts",
	"c++":        "cpp",
	"c":          "c",
	"c#":         "cs",
	"go":         "go",
	"ruby":       "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"rust":       "rs",
	"scala":      "scala",
	"php":        "php",
}

// Extension maps a language name to a file extension, case-insensitively.
func Extension(language string) string {
	if ext, ok := extensions[strings.ToLower(strings.TrimSpace(language))]; ok {
		return ext
	}
	return DefaultExtension
}

// SanitizeTitle replaces every character outside [A-Za-z0-9-_] with '_'.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, title)
}

// ResolvePath computes the repository-relative path of a solution file.
// The same snapshot and policy always produce the same path.
func ResolvePath(snapshot model.ProblemSnapshot, policy model.OrganizationPolicy) string {
	file := SanitizeTitle(snapshot.Title) + "." + Extension(snapshot.Language)

	switch policy {
	case model.ByLanguage:
		return snapshot.Language + "/" + file
	case model.ByDifficulty:
		return snapshot.Difficulty.String() + "/" + file
	default:
		return file
	}
}
