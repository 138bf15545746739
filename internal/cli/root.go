package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"leetpush/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "leetpush",
	Short: "Publish accepted LeetCode solutions to a GitHub repository",
	Long: "leetpush reads a LeetCode problem page, detects the problem and the submitted code,\n" +
		"and commits the solution to a GitHub repository with a metadata header.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded
	return nil
}

// Execute runs the command tree until ctx is cancelled.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd)
}
