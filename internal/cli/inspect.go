package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"leetpush/internal/di"
	"leetpush/internal/domain/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <page>",
	Short: "Show the problem and language detected on a page",
	Long:  "Inspect loads a problem page from a URL or a saved HTML file and prints the detected details without publishing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	service, err := di.InitializeService(cfg)
	if err != nil {
		return err
	}

	snapshot, err := service.Inspect(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return pterm.DefaultTable.WithHasHeader().WithData(snapshotTable(snapshot)).Render()
}

func snapshotTable(s *model.ProblemSnapshot) pterm.TableData {
	category := s.Category()
	if category == "" {
		category = "N/A"
	}
	return pterm.TableData{
		{"Problem", "Language"},
		{s.Title, s.Language},
		{"Difficulty", s.Difficulty.String()},
		{"Category", category},
		{"URL", s.URL},
	}
}
