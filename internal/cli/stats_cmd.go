package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the weekly retrospective",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := time.Now().UTC()
			if week != "" {
				parsed, err := time.Parse("2006-01-02", week)
				if err != nil {
					return fmt.Errorf("parsing week: %w", err)
				}
				weekStart = parsed
			}

			stats, err := app.Stats.WeeklyStats(context.Background(), app.UserID, weekStart)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeeklyStats(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day of the target week (YYYY-MM-DD, default: current week)")

	return cmd
}
