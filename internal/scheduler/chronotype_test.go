package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakHours_KnownChronotypes(t *testing.T) {
	tests := []struct {
		chronotype string
		want       []PeakWindow
	}{
		{"bear", []PeakWindow{{"10:00", "12:00"}, {"16:00", "18:00"}}},
		{"lion", []PeakWindow{{"06:00", "08:00"}, {"13:00", "15:00"}}},
		{"wolf", []PeakWindow{{"16:00", "18:00"}, {"19:00", "21:00"}}},
		{"dolphin", []PeakWindow{{"10:00", "12:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.chronotype, func(t *testing.T) {
			assert.Equal(t, tt.want, PeakHours(tt.chronotype))
		})
	}
}

func TestPeakHours_CaseInsensitive(t *testing.T) {
	want := PeakHours("bear")
	assert.Equal(t, want, PeakHours("BEAR"))
	assert.Equal(t, want, PeakHours("Bear"))
	assert.Equal(t, want, PeakHours("  bear  "))
}

func TestPeakHours_UnknownFallsBackToBear(t *testing.T) {
	bear := PeakHours("bear")
	assert.Equal(t, bear, PeakHours("not-a-real-type"))
	assert.Equal(t, bear, PeakHours(""))
	assert.Equal(t, bear, PeakHours("owl"))
}

func TestPeakHours_WindowsWellFormed(t *testing.T) {
	for _, chronotype := range []string{"bear", "lion", "wolf", "dolphin"} {
		windows := PeakHours(chronotype)
		require.NotEmpty(t, windows, chronotype)
		for _, w := range windows {
			assert.Less(t, w.Start, w.End, "%s window %v", chronotype, w)
		}
	}
}

func TestPeakHours_ReturnsCopy(t *testing.T) {
	first := PeakHours("bear")
	first[0].Start = "00:00"
	assert.Equal(t, "10:00", PeakHours("bear")[0].Start, "mutating the result must not affect the table")
}
