package cli

import (
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpush/internal/domain/model"
)

func newSettingsFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("configure", pflag.ContinueOnError)
	flags.String("token", "", "")
	flags.String("repo", "", "")
	flags.String("branch", "", "")
	flags.String("organization", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestApplySettingsFlags_OnlyChangedFlagsOverride(t *testing.T) {
	stored := model.Settings{Token: "old", Repository: "octo/old", Branch: "dev", Organization: model.ByDifficulty}

	got, err := applySettingsFlags(newSettingsFlags(t, "--repo", " octo/new "), stored)
	require.NoError(t, err)

	assert.Equal(t, "old", got.Token)
	assert.Equal(t, "octo/new", got.Repository)
	assert.Equal(t, "dev", got.Branch)
	assert.Equal(t, model.ByDifficulty, got.Organization)
}

func TestApplySettingsFlags_FillsDefaults(t *testing.T) {
	got, err := applySettingsFlags(newSettingsFlags(t, "--token", "t", "--repo", "octo/r", "--branch", ""), model.Settings{})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultBranch, got.Branch)
	assert.Equal(t, model.DefaultPolicy, got.Organization)
}

func TestApplySettingsFlags_Organization(t *testing.T) {
	got, err := applySettingsFlags(newSettingsFlags(t, "--organization", "Flat"), model.Settings{})
	require.NoError(t, err)
	assert.Equal(t, model.Flat, got.Organization)

	_, err = applySettingsFlags(newSettingsFlags(t, "--organization", "by-year"), model.Settings{})
	assert.ErrorIs(t, err, model.ErrInvalidSettings)
}

type memorySettings struct {
	stored model.Settings
	saved  bool
}

func (m *memorySettings) Load(context.Context) (model.Settings, error) { return m.stored, nil }

func (m *memorySettings) Save(_ context.Context, s model.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.stored, m.saved = s, true
	return nil
}

func TestConfigureSettingsReportsValidationDetail(t *testing.T) {
	store := &memorySettings{}

	err := configureSettings(context.Background(), store, newSettingsFlags(t, "--token", "t", "--repo", "solutions"))
	require.ErrorIs(t, err, model.ErrInvalidSettings)
	assert.Contains(t, err.Error(), "owner/name")
	assert.False(t, store.saved)

	err = configureSettings(context.Background(), store, newSettingsFlags(t, "--token", "t", "--repo", "octo/solutions"))
	require.NoError(t, err)
	assert.Equal(t, "octo/solutions", store.stored.Repository)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "(not set)", maskToken(""))
	assert.Equal(t, "*****", maskToken("short"))
	assert.Equal(t, "ghp_****wxyz", maskToken("ghp_abcdwxyz"))
	assert.Equal(t, "ghp_********wxyz", maskToken("ghp_12345678wxyz"))
}

func TestSettingsTable(t *testing.T) {
	data := settingsTable("/tmp/settings.yaml", model.Settings{Branch: "main", Organization: model.ByLanguage})

	require.Len(t, data, 6)
	assert.Equal(t, []string{"Token", "(not set)"}, data[1])
	assert.Equal(t, []string{"Repository", "(not set)"}, data[2])
	assert.Equal(t, []string{"File", "/tmp/settings.yaml"}, data[5])
}

func TestSnapshotTable(t *testing.T) {
	data := snapshotTable(&model.ProblemSnapshot{
		Title:      "Two Sum",
		Language:   "Go",
		Difficulty: model.DifficultyEasy,
		URL:        "https://leetcode.com/problems/two-sum/",
	})

	assert.Equal(t, []string{"Two Sum", "Go"}, data[1])
	assert.Equal(t, []string{"Difficulty", "Easy"}, data[2])
	assert.Equal(t, []string{"Category", "N/A"}, data[3])
}

func TestPageStatus(t *testing.T) {
	label, _ := pageStatus("https://leetcode.com/problems/two-sum/description/")
	assert.Equal(t, "Active", label)

	label, _ = pageStatus("https://leetcode.com/contest/")
	assert.Equal(t, "Inactive", label)

	label, _ = pageStatus("https://example.com/problems/two-sum/")
	assert.Equal(t, "Inactive", label)
}

func TestRootCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"configure", "settings", "inspect", "push", "status", "watch"})
}
