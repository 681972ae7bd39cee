package contract

// WeeklyStats is the retrospective read model for a past week.
type WeeklyStats struct {
	CompletedTasks int
	TotalTasks     int
	SkippedTasks   int

	// TotalHours sums task-carrying blocks only, buffer and rescue excluded.
	TotalHours float64
	MaxHours   float64

	RescueUsed int
	RescueMax  int

	// AvgFocusQuality and AvgEnergyLevel are always 0: the focus/energy
	// journal that would feed them is not wired to a data source yet.
	AvgFocusQuality float64
	AvgEnergyLevel  float64
}
