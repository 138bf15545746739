package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"leetpush/internal/adapter/leetcode"
)

var statusCmd = &cobra.Command{
	Use:   "status <url>",
	Short: "Tell whether a URL is a LeetCode problem page leetpush can publish from",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	label, rgb := pageStatus(args[0])
	pterm.Println()
	pterm.Printf("  %s %s  %s\n", rgb.Sprint("●"), pterm.Bold.Sprint(args[0]), label)
	pterm.Println()
	return nil
}

func pageStatus(rawURL string) (string, pterm.RGB) {
	if leetcode.IsProblemPageURL(rawURL) {
		return "Active", pterm.NewRGB(31, 163, 130)
	}
	return "Inactive", pterm.NewRGB(128, 128, 128)
}
