package cli

import (
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"leetpush/internal/di"
)

var pushCmd = &cobra.Command{
	Use:   "push <page>",
	Short: "Publish the solution on a page to GitHub",
	Long: "Push loads a problem page, extracts the submitted code and commits it to the configured\n" +
		"repository. An existing file at the same path is updated in place.",
	Example: "  leetpush push https://leetcode.com/problems/two-sum/\n" +
		"  leetpush push two-sum.html --editor-state two-sum.editor.json --open",
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

func init() {
	pushCmd.Flags().String("editor-state", "", "JSON file with the editor buffers ({\"models\": [...]})")
	pushCmd.Flags().Bool("open", false, "Open the published file in the browser")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	editorState, _ := cmd.Flags().GetString("editor-state")
	open, _ := cmd.Flags().GetBool("open")

	service, err := di.InitializeService(cfg)
	if err != nil {
		return err
	}

	result, err := service.Publish(cmd.Context(), args[0], editorState)
	if err != nil {
		return err
	}

	if open && result.Commit.FileURL != "" {
		if err := browser.OpenURL(result.Commit.FileURL); err != nil {
			pterm.Warning.Printfln("Could not open %s: %v", result.Commit.FileURL, err)
		}
	}
	return nil
}
