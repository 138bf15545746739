package model

import "strings"

// Sentinel values returned when a field could not be extracted from the page.
const (
	UnknownProblem  = "Unknown Problem"
	UnknownLanguage = "Unknown"
	MissingCode     = "// Could not extract code"
)

// Difficulty is the LeetCode difficulty rating of a problem.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// ParseDifficulty maps free-form text onto a Difficulty, case-insensitively.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

func (d Difficulty) String() string {
	if d == "" {
		return string(DifficultyUnknown)
	}
	return string(d)
}

// ProblemSnapshot is the metadata and code extracted from one problem page at one point in time.
type ProblemSnapshot struct {
	Title      string     `json:"problemName"`
	Language   string     `json:"language"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
	SourceCode string     `json:"code,omitempty"`
	URL        string     `json:"problemUrl"`
}

// Category joins the tags the way they appear in the solution header.
func (s ProblemSnapshot) Category() string {
	return strings.Join(s.Tags, ", ")
}

// WithoutCode returns a copy of the snapshot carrying metadata only.
func (s ProblemSnapshot) WithoutCode() ProblemSnapshot {
	s.SourceCode = ""
	if s.Tags != nil {
		s.Tags = append([]string(nil), s.Tags...)
	}
	return s
}

// HasCode reports whether real code, not the sentinel, was extracted.
func (s ProblemSnapshot) HasCode() bool {
	return s.SourceCode != "" && s.SourceCode != MissingCode
}
