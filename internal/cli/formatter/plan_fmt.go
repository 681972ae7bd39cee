package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/amorasol/weekplan/internal/contract"
	"github.com/amorasol/weekplan/internal/domain"
)

// FormatWeekPlan formats a week plan preview, grouped by day.
func FormatWeekPlan(plan *contract.WeekPlan) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("WEEK OF %s", plan.WeekStart.Format("Jan 2, 2006"))))
	b.WriteString("\n")

	var currentDay time.Time
	for _, block := range plan.TimeBlocks {
		if !block.Date.Equal(currentDay) {
			currentDay = block.Date
			b.WriteString("\n" + Bold(currentDay.Format("Monday Jan 2")) + "\n")
		}
		b.WriteString(formatBlockLine(block))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s task hours, %s buffer, %s rescue slot(s)\n",
		Bold(fmt.Sprintf("%.1f", plan.TotalHours)),
		StyleDim.Render(fmt.Sprintf("%.1f", plan.BufferHours)),
		StylePurple.Render(fmt.Sprintf("%d", plan.RescueSlots)),
	))

	return b.String()
}

func formatBlockLine(block domain.TimeBlock) string {
	window := fmt.Sprintf("%s-%s",
		block.StartTime.Format("15:04"), block.EndTime.Format("15:04"))

	label := block.TaskTitle
	if !block.BlockType.TaskCarrying() {
		label = strings.ToUpper(string(block.BlockType))
	}

	return fmt.Sprintf("  %s  %s %s\n",
		StyleFg.Render(window),
		BlockStyle(block.BlockType).Render(fmt.Sprintf("[%s]", block.BlockType)),
		label,
	)
}

// FormatTaskList formats the backlog as one line per task.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		state := ""
		switch {
		case t.DeletedAt != nil:
			state = Dim(" (deleted)")
		case t.ArchivedAt != nil:
			state = Dim(" (archived)")
		case t.Status == domain.TaskDone:
			state = StyleGreen.Render(" ✓")
		}

		b.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s%s\n",
			Dim(t.ID),
			PriorityLabel(t.Priority),
			Stars(t.Difficulty),
			Dim(fmt.Sprintf("%dm", t.EstimatedMin)),
			t.Title,
			state,
		))
	}
	return b.String()
}
