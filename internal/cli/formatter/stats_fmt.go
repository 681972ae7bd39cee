package formatter

import (
	"fmt"
	"strings"

	"github.com/amorasol/weekplan/internal/contract"
)

// FormatWeeklyStats formats the weekly retrospective.
func FormatWeeklyStats(stats *contract.WeeklyStats) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("WEEKLY RETROSPECTIVE"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Tasks      %s completed, %s skipped of %s\n",
		StyleGreen.Render(fmt.Sprintf("%d", stats.CompletedTasks)),
		StyleRed.Render(fmt.Sprintf("%d", stats.SkippedTasks)),
		Bold(fmt.Sprintf("%d", stats.TotalTasks)),
	))
	b.WriteString(fmt.Sprintf("Hours      %s of %s productive\n",
		Bold(fmt.Sprintf("%.1f", stats.TotalHours)),
		Dim(fmt.Sprintf("%.1f", stats.MaxHours)),
	))
	b.WriteString(fmt.Sprintf("Rescue     %s of %s slots used\n",
		StylePurple.Render(fmt.Sprintf("%d", stats.RescueUsed)),
		Dim(fmt.Sprintf("%d", stats.RescueMax)),
	))

	return b.String()
}
