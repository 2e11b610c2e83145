package slots

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

func TestDefaultGrid(t *testing.T) {
	got := slices.Collect(DefaultGrid())

	assert.Len(t, got, 44)
	assert.Equal(t, types.TimeString("09:00"), got[0])
	assert.Equal(t, types.TimeString("09:15"), got[1])
	assert.Equal(t, types.TimeString("19:45"), got[len(got)-1])
}

func TestGrid_Restartable(t *testing.T) {
	grid := Grid(10, 12, 30)

	first := slices.Collect(grid)
	second := slices.Collect(grid)

	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, first)
	assert.Equal(t, first, second)
}

func TestGrid_EarlyStop(t *testing.T) {
	var got []types.TimeString
	for ts := range Grid(9, 20, 15) {
		got = append(got, ts)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []types.TimeString{"09:00", "09:15", "09:30"}, got)
}

func TestGrid_Degenerate(t *testing.T) {
	assert.Empty(t, slices.Collect(Grid(9, 20, 0)))
	assert.Empty(t, slices.Collect(Grid(20, 9, 15)))
	assert.Empty(t, slices.Collect(Grid(9, 9, 15)))
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, time.March, 3, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name string
		a, b [2]time.Time
		want bool
	}{
		{name: "partial", a: [2]time.Time{at(10, 0), at(11, 0)}, b: [2]time.Time{at(10, 30), at(11, 0)}, want: true},
		{name: "contained", a: [2]time.Time{at(10, 0), at(12, 0)}, b: [2]time.Time{at(10, 30), at(11, 0)}, want: true},
		{name: "identical", a: [2]time.Time{at(10, 0), at(11, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: true},
		{name: "touching end", a: [2]time.Time{at(10, 0), at(11, 0)}, b: [2]time.Time{at(11, 0), at(11, 30)}, want: false},
		{name: "touching start", a: [2]time.Time{at(11, 0), at(11, 30)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: false},
		{name: "disjoint", a: [2]time.Time{at(9, 0), at(9, 30)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
			assert.Equal(t, tt.want, Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]))
		})
	}
}

func TestWithinWorkingHours(t *testing.T) {
	schedule := domain.DefaultWorkSchedule()
	minutes := func(s string) int { return types.TimeString(s).Minutes() }

	assert.True(t, WithinWorkingHours(schedule, time.Monday, minutes("09:00"), minutes("10:00")))
	assert.True(t, WithinWorkingHours(schedule, time.Monday, minutes("17:00"), minutes("18:00")))
	assert.False(t, WithinWorkingHours(schedule, time.Monday, minutes("08:45"), minutes("09:15")))
	assert.False(t, WithinWorkingHours(schedule, time.Monday, minutes("17:30"), minutes("18:30")))
	assert.False(t, WithinWorkingHours(schedule, time.Saturday, minutes("09:00"), minutes("10:00")))
	assert.False(t, WithinWorkingHours(schedule, time.Sunday, minutes("12:00"), minutes("13:00")))
}
