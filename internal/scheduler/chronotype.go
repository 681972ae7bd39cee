package scheduler

import (
	"strings"

	"github.com/amorasol/weekplan/internal/domain"
)

// PeakWindow is a daily peak-alertness interval in zero-padded "HH:mm"
// notation, Start strictly before End.
type PeakWindow struct {
	Start string
	End   string
}

// peakTable maps each chronotype to its ordered daily peak windows.
var peakTable = map[domain.Chronotype][]PeakWindow{
	domain.ChronoBear: {
		{Start: "10:00", End: "12:00"},
		{Start: "16:00", End: "18:00"},
	},
	domain.ChronoLion: {
		{Start: "06:00", End: "08:00"},
		{Start: "13:00", End: "15:00"},
	},
	domain.ChronoWolf: {
		{Start: "16:00", End: "18:00"},
		{Start: "19:00", End: "21:00"},
	},
	domain.ChronoDolphin: {
		{Start: "10:00", End: "12:00"},
	},
}

// PeakHours returns the peak windows for a chronotype. Lookup is
// case-insensitive; unknown or empty input falls back to bear rather than
// failing, so a missing preference never blocks planning.
func PeakHours(chronotype string) []PeakWindow {
	key := domain.Chronotype(strings.ToLower(strings.TrimSpace(chronotype)))
	windows, ok := peakTable[key]
	if !ok {
		windows = peakTable[domain.ChronoBear]
	}
	out := make([]PeakWindow, len(windows))
	copy(out, windows)
	return out
}
