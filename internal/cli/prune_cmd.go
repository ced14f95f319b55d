package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/cli/formatter"
	"github.com/pmakowski/twinsight/internal/domain"
	"github.com/pmakowski/twinsight/internal/service"
)

func newPruneCmd(a *App) *cobra.Command {
	var target levelFlag
	var yes bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete as-performed evidence for a node level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !target.set {
				return fmt.Errorf("--target-level is required (activity, operation, action or all)")
			}

			if !yes && !dryRun {
				if !a.IsInteractive() {
					return fmt.Errorf("refusing to prune without --yes in a non-interactive session")
				}
				confirmed, err := confirmPrune(target.String())
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("Cancelled."))
					return nil
				}
			}

			result, err := a.Lifecycle.Prune(context.Background(), service.PruneTarget{
				Level:  target.level,
				All:    target.all,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderBox("Prune", pruneSummary(result, dryRun)))
			return nil
		},
	}

	cmd.Flags().Var(&target, "target-level", "Node level to prune evidence for (activity, operation, action or all)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Count matching records without deleting anything")

	return cmd
}

func confirmPrune(target string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete all evidence at level %q? This cannot be undone from the store itself.", target)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func pruneSummary(result *service.PruneResult, dryRun bool) string {
	if len(result.Deleted) == 0 {
		return formatter.Dim("Nothing to delete.")
	}
	parts := make([]string, 0, len(result.Deleted))
	for _, level := range []domain.NodeLevel{domain.LevelActivity, domain.LevelOperation, domain.LevelAction} {
		if n, ok := result.Deleted[level]; ok {
			parts = append(parts, fmt.Sprintf("%d %s records", n, level))
		}
	}
	verb := "Deleted "
	if dryRun {
		verb = "Would delete "
	}
	return verb + strings.Join(parts, ", ")
}
