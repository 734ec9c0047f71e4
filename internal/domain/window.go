package domain

import "time"

// TimeWindow is a half-open time interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the window has positive length
func (w TimeWindow) IsValid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && w.Start.Before(w.End)
}

// Overlaps reports whether two half-open intervals intersect
// Touching boundaries (a.End == b.Start) do not overlap, so back-to-back
// reservations are always allowed; a zero-length window overlaps nothing
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// SameCalendarDay returns true if Start and End fall on the same calendar day
// Cross-midnight windows are not supported
func (w TimeWindow) SameCalendarDay() bool {
	y1, m1, d1 := w.Start.Date()
	y2, m2, d2 := w.End.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Duration returns the window length
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
