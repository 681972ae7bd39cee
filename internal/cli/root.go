package cli

import (
	"github.com/amorasol/weekplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the trusted user identifier supplied by the environment.
type App struct {
	Tasks service.TaskService
	Plan  service.PlanService
	Stats service.StatsService

	UserID string

	// IsInteractive gates the save-confirmation prompt.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "weekplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "weekplan",
		Short: "Weekly task scheduler with chronotype-aware placement",
	}

	root.AddCommand(
		newTaskCmd(app),
		newPlanCmd(app),
		newStatsCmd(app),
	)

	return root
}
