package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(t *testing.T, start, end string) TimeWindow {
	t.Helper()
	day := "2025-10-13" // понедельник
	s, err := time.Parse("2006-01-02 15:04", day+" "+start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse("2006-01-02 15:04", day+" "+end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return TimeWindow{Start: s, End: e}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{"partial overlap", window(t, "10:00", "11:00"), window(t, "10:30", "11:30"), true},
		{"contained", window(t, "10:00", "12:00"), window(t, "10:30", "11:00"), true},
		{"identical", window(t, "10:00", "11:00"), window(t, "10:00", "11:00"), true},
		{"touching boundary", window(t, "10:00", "11:00"), window(t, "11:00", "12:00"), false},
		{"disjoint", window(t, "09:00", "10:00"), window(t, "14:00", "15:00"), false},
		{"zero-length never overlaps", window(t, "10:30", "10:30"), window(t, "10:00", "11:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeWindow_IsValid(t *testing.T) {
	assert.True(t, window(t, "10:00", "11:00").IsValid())
	assert.False(t, window(t, "11:00", "10:00").IsValid())
	assert.False(t, window(t, "10:00", "10:00").IsValid())
	assert.False(t, TimeWindow{}.IsValid())
}

func TestTimeWindow_SameCalendarDay(t *testing.T) {
	w := window(t, "10:00", "11:00")
	assert.True(t, w.SameCalendarDay())

	crossMidnight := TimeWindow{
		Start: w.Start,
		End:   w.End.AddDate(0, 0, 1),
	}
	assert.False(t, crossMidnight.SameCalendarDay())
}
