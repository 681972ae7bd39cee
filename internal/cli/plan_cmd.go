package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/cli/formatter"
	"github.com/amorasol/weekplan/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var week, chronotype string
	var save, yes bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the week's time blocks",
		Long: `Plan the week's time blocks.

Computes a preview from the eligible backlog (sacred and important tasks
without a block this week). Nothing is written unless --save is given and
the plan is confirmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := time.Now().UTC()
			if week != "" {
				parsed, err := time.Parse("2006-01-02", week)
				if err != nil {
					return fmt.Errorf("parsing week: %w", err)
				}
				weekStart = parsed
			}

			ctx := context.Background()
			plan, err := app.Plan.PlanWeek(ctx, contract.PlanWeekRequest{
				UserID:     app.UserID,
				WeekStart:  weekStart,
				Chronotype: chronotype,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatWeekPlan(plan))

			if !save {
				return nil
			}
			confirmed := yes
			if !confirmed {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("refusing to save without confirmation; pass --yes in non-interactive use")
				}
				confirmed, err = confirmSave(len(plan.TimeBlocks), plan.WeekStart)
				if err != nil {
					return err
				}
			}
			if !confirmed {
				fmt.Println("Not saved.")
				return nil
			}

			if err := app.Plan.SaveWeek(ctx, plan); err != nil {
				return err
			}
			fmt.Printf("Saved %d blocks for the week of %s.\n",
				len(plan.TimeBlocks), plan.WeekStart.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day of the target week (YYYY-MM-DD, default: current week)")
	cmd.Flags().StringVar(&chronotype, "chronotype", "", "Chronotype for peak-hour placement (bear, lion, wolf, dolphin)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the plan after confirmation")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirmSave(blockCount int, weekStart time.Time) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save %d blocks for the week of %s?",
					blockCount, weekStart.Format("2006-01-02"))).
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("running confirmation: %w", err)
	}
	return confirmed, nil
}
