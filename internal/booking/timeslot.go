package booking

import (
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	slotLayout  = "3:04 PM"
)

// TimeSlots returns every start time from start to end inclusive, interval
// minutes apart, as 12-hour labels ("10:00 AM"). Bounds are "HH:MM".
func TimeSlots(start, end string, interval int) ([]string, error) {
	from, err := time.Parse(clockLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parsing slot start %q: %w", start, err)
	}
	to, err := time.Parse(clockLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parsing slot end %q: %w", end, err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("slot interval must be positive, got %d", interval)
	}

	var slots []string
	step := time.Duration(interval) * time.Minute
	for t := from; !t.After(to); t = t.Add(step) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots, nil
}

// FormatTime renders "HH:MM" as a 12-hour label. Values already in 12-hour
// form, and anything unparseable, are returned unchanged.
func FormatTime(s string) string {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return s
	}
	return t.Format(slotLayout)
}
