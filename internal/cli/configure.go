package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"leetpush/internal/di"
	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the GitHub token, repository, branch and folder organization",
	Example: "  leetpush configure --token ghp_xxx --repo octocat/leetcode\n" +
		"  leetpush configure --organization difficulty",
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().String("token", "", "GitHub personal access token")
	configureCmd.Flags().String("repo", "", "Target repository as owner/name")
	configureCmd.Flags().String("branch", "", "Target branch (default \"main\")")
	configureCmd.Flags().String("organization", "", "Folder layout: language, difficulty or flat")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	store, err := di.InitializeSettings(cfg)
	if err != nil {
		return err
	}

	if err := configureSettings(cmd.Context(), store, cmd.Flags()); err != nil {
		return err
	}

	pterm.Success.Println("Settings saved successfully!")
	return nil
}

func configureSettings(ctx context.Context, store ports.SettingsStore, flags *pflag.FlagSet) error {
	current, err := store.Load(ctx)
	if err != nil {
		return err
	}

	updated, err := applySettingsFlags(flags, current)
	if err != nil {
		return err
	}
	return store.Save(ctx, updated)
}

// applySettingsFlags overlays the flags the user set on the stored settings.
func applySettingsFlags(flags *pflag.FlagSet, s model.Settings) (model.Settings, error) {
	if flags.Changed("token") {
		s.Token, _ = flags.GetString("token")
	}
	if flags.Changed("repo") {
		repo, _ := flags.GetString("repo")
		s.Repository = strings.TrimSpace(repo)
	}
	if flags.Changed("branch") {
		branch, _ := flags.GetString("branch")
		s.Branch = strings.TrimSpace(branch)
	}
	if flags.Changed("organization") {
		value, _ := flags.GetString("organization")
		policy := model.ParsePolicy(value)
		if !strings.EqualFold(strings.TrimSpace(value), string(policy)) {
			return s, fmt.Errorf("%w: organization must be one of language, difficulty, flat", model.ErrInvalidSettings)
		}
		s.Organization = policy
	}
	return s.WithDefaults(), nil
}
