package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/cli/formatter"
)

func newImportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <schedule.json>",
		Short: "Import a planned schedule, replacing the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportSchedule(context.Background(), args[0])
			if err != nil {
				return err
			}

			verb := "Imported"
			if result.Replaced {
				verb = "Replaced schedule with"
			}
			fmt.Println(formatter.RenderBox("Import",
				fmt.Sprintf("%s %s (%d nodes)",
					verb,
					formatter.Bold(result.ScheduleName),
					result.NodeCount,
				)))
			return nil
		},
	}
	return cmd
}
