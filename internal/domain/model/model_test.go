package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"Easy":     DifficultyEasy,
		" medium ": DifficultyMedium,
		"HARD":     DifficultyHard,
		"":         DifficultyUnknown,
		"Expert":   DifficultyUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseDifficulty(in), "input %q", in)
	}
	assert.Equal(t, "Unknown", Difficulty("").String())
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, ByLanguage, ParsePolicy(""))
	assert.Equal(t, ByLanguage, ParsePolicy("Language"))
	assert.Equal(t, ByDifficulty, ParsePolicy("difficulty"))
	assert.Equal(t, Flat, ParsePolicy("flat"))
	assert.Equal(t, Flat, ParsePolicy("by-year"))
}

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{Token: "t", Repository: "o/r", Branch: "  "}.WithDefaults()
	assert.Equal(t, DefaultBranch, s.Branch)
	assert.Equal(t, DefaultPolicy, s.Organization)

	s = Settings{Branch: "dev", Organization: Flat}.WithDefaults()
	assert.Equal(t, "dev", s.Branch)
	assert.Equal(t, Flat, s.Organization)
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, Settings{Token: "t", Repository: "octo/solutions"}.Validate())

	for _, s := range []Settings{
		{Repository: "octo/solutions"},
		{Token: "t"},
		{Token: "t", Repository: "solutions"},
		{Token: "t", Repository: "/solutions"},
		{Token: "t", Repository: "octo/solutions/extra"},
	} {
		assert.ErrorIs(t, s.Validate(), ErrInvalidSettings, "settings %+v", s)
	}
}

func TestSnapshotHelpers(t *testing.T) {
	s := ProblemSnapshot{Title: "Two Sum", Tags: []string{"Array", "Hash Table"}, SourceCode: "code"}

	assert.Equal(t, "Array, Hash Table", s.Category())
	assert.True(t, s.HasCode())

	bare := s.WithoutCode()
	assert.Empty(t, bare.SourceCode)
	bare.Tags[0] = "Changed"
	assert.Equal(t, "Array", s.Tags[0])

	assert.False(t, ProblemSnapshot{SourceCode: MissingCode}.HasCode())
}

func TestRemoteErrors(t *testing.T) {
	var err error = &RemoteCheckError{Status: 500}
	assert.Equal(t, "GitHub API responded with status 500", err.Error())

	err = &RemoteWriteError{Status: 409, Message: "sha does not match"}
	assert.Equal(t, "GitHub API error: sha does not match", err.Error())
	assert.Equal(t, "GitHub API error: status 422", (&RemoteWriteError{Status: 422}).Error())

	var writeErr *RemoteWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, 409, writeErr.Status)
}

func TestTargetAndLevels(t *testing.T) {
	assert.False(t, RemoteFileTarget{}.IsUpdate())
	assert.True(t, RemoteFileTarget{PriorSHA: "abc"}.IsUpdate())

	assert.False(t, LevelInfo.Terminal())
	assert.True(t, LevelSuccess.Terminal())
	assert.True(t, LevelError.Terminal())
}
