package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"leetpush/internal/di"
	"leetpush/internal/domain/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the saved settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	store, err := di.InitializeSettings(cfg)
	if err != nil {
		return err
	}

	current, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	return pterm.DefaultTable.WithHasHeader().WithData(settingsTable(store.Path(), current)).Render()
}

func settingsTable(path string, s model.Settings) pterm.TableData {
	repository := s.Repository
	if repository == "" {
		repository = "(not set)"
	}
	return pterm.TableData{
		{"Setting", "Value"},
		{"Token", maskToken(s.Token)},
		{"Repository", repository},
		{"Branch", s.Branch},
		{"Organization", string(s.Organization)},
		{"File", path},
	}
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 8:
		return strings.Repeat("*", len(token))
	default:
		return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
	}
}
