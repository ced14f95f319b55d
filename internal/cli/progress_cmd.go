package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/app"
	"github.com/pmakowski/twinsight/internal/cli/formatter"
)

func newProgressCmd(a *App) *cobra.Command {
	var asOfStr string
	var sinceStr string
	var activities []string
	var barWidth int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Compute and chart planned vs. as-performed progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewMonitorRequest()

			if asOfStr == "" {
				asOfStr = a.Config.DefaultAsOf
			}
			if asOfStr != "" {
				asOf, err := time.Parse("2006-01-02", asOfStr)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q (expected YYYY-MM-DD)", asOfStr)
				}
				req.AsOf = &asOf
			}
			if sinceStr != "" {
				since, err := time.Parse("2006-01-02", sinceStr)
				if err != nil {
					return fmt.Errorf("invalid --since date %q (expected YYYY-MM-DD)", sinceStr)
				}
				req.Since = &since
			}
			req.ActivityScope = activities

			resp, err := a.Monitor.Run(context.Background(), req)
			if err != nil {
				return err
			}

			width := barWidth
			if width == 0 {
				width = a.Config.BarWidth
			}
			fmt.Println(formatter.RenderGantt(resp, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "Evaluation date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&sinceStr, "since", "", "Only consider evidence captured on or after this date")
	cmd.Flags().StringSliceVar(&activities, "activity", nil, "Restrict the chart to these activity IDs")
	cmd.Flags().IntVar(&barWidth, "bar-width", 0, "Bar width in cells (default from config)")

	return cmd
}
