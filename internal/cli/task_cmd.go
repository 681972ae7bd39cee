package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amorasol/weekplan/internal/cli/formatter"
	"github.com/amorasol/weekplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task backlog",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRmCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var difficulty, estimate int
	var priority, deadline string
	var dependsOn []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				UserID:       app.UserID,
				Title:        args[0],
				Difficulty:   difficulty,
				EstimatedMin: estimate,
				Priority:     domain.Priority(priority),
				Dependencies: dependsOn,
			}
			if deadline != "" {
				d, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("parsing deadline: %w", err)
				}
				task.Deadline = &d
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().IntVarP(&difficulty, "difficulty", "d", 3, "Difficulty 1-5")
	cmd.Flags().IntVarP(&estimate, "minutes", "m", 60, "Estimated duration in minutes")
	cmd.Flags().StringVarP(&priority, "priority", "p", "important", "Priority: sacred, important or optional")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&dependsOn, "depends-on", nil, "Task ids that must be scheduled earlier")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), app.UserID, includeDeleted)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "all", false, "Include deleted and archived tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Println("Done.")
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Soft-delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
