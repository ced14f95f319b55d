package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/cli/formatter"
)

func newIngestCmd(a *App) *cobra.Command {
	var forceUpdate bool

	cmd := &cobra.Command{
		Use:   "ingest <scan-report.json>",
		Short: "Ingest an as-performed scan report into the evidence store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Lifecycle.Ingest(context.Background(), args[0], forceUpdate)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderBox("Ingest",
				fmt.Sprintf("%d created, %d updated, %d skipped",
					result.Created, result.Updated, result.Skipped)))
			if result.Skipped > 0 && !forceUpdate {
				fmt.Println(formatter.Dim("  Existing (node, source) records were kept. Re-run with --force-update to overwrite."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceUpdate, "force-update", false, "Overwrite evidence that already exists for the same node and source")

	return cmd
}
