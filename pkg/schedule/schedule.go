// pkg/schedule/schedule.go
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is the day tag used by availability time slots and board filters.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// weekdays is indexed by time.Weekday (0 = Sunday).
var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOf maps a calendar date to its weekday tag.
func DayOf(t time.Time) Weekday {
	return weekdays[int(t.Weekday())]
}

// IsValidWeekday reports whether s is one of the seven weekday tags.
func IsValidWeekday(s string) bool {
	for _, d := range weekdays {
		if string(d) == s {
			return true
		}
	}
	return false
}

// ToMinutes parses a wall-clock "HH:MM" value into minutes since midnight.
// A trailing seconds component ("HH:MM:SS") is ignored.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", hhmm)
	}
	return hours*60 + minutes, nil
}

// Contains reports whether the [innerStart, innerEnd] interval falls
// completely inside [outerStart, outerEnd], with inclusive bounds. The test
// is deliberately asymmetric: Contains(a, b) and Contains(b, a) differ
// unless the intervals are equal. Unparseable times never contain anything.
func Contains(innerStart, innerEnd, outerStart, outerEnd string) bool {
	is, err := ToMinutes(innerStart)
	if err != nil {
		return false
	}
	ie, err := ToMinutes(innerEnd)
	if err != nil {
		return false
	}
	os, err := ToMinutes(outerStart)
	if err != nil {
		return false
	}
	oe, err := ToMinutes(outerEnd)
	if err != nil {
		return false
	}
	return is >= os && ie <= oe
}
