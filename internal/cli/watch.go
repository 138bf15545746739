package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"leetpush/internal/di"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Publish every page saved into the inbox directory on a schedule",
	Long: "Watch publishes each *.html page in INBOX_DIR once at startup and then on WATCH_CRON.\n" +
		"Published pages move to INBOX_DIR/published and failed pages to INBOX_DIR/failed;\n" +
		"each page is attempted once.",
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	application, err := di.InitializeWatcher(cfg)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("Watching %s (schedule %q)", cfg.InboxDir, cfg.WatchCron)
	return application.Run(cmd.Context())
}
