package focus

import (
	"strconv"
	"strings"
	"time"
)

// RepeatMode selects which calendar days a window applies on.
type RepeatMode int

const (
	RepeatDaily RepeatMode = iota
	RepeatWeekdays
	RepeatWeekends
	RepeatCustom
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatDaily:
		return "DAILY"
	case RepeatWeekdays:
		return "WEEKDAYS"
	case RepeatWeekends:
		return "WEEKENDS"
	case RepeatCustom:
		return "CUSTOM"
	}
	return "CUSTOM"
}

// Recurrence is the in-memory recurrence rule: a mode plus, for custom
// rules, an explicit day set.
type Recurrence struct {
	Mode RepeatMode
	Days WeekdaySet
}

// WeekdaySet is a bitmask over time.Weekday (Sunday = bit 0).
type WeekdaySet uint8

func (s WeekdaySet) Contains(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }
func (s *WeekdaySet) Add(d time.Weekday)          { *s |= 1 << uint(d) }
func (s WeekdaySet) Empty() bool                  { return s == 0 }

// Custom day lists persist in the Sunday=1 .. Saturday=7 convention of the
// historical data ("2,3,4,5,6" is Monday through Friday). Entries outside
// 1..7 or unparsable are skipped, never an error: bad user configuration
// degrades to "applies never".
func parseCustomDays(s string) WeekdaySet {
	var set WeekdaySet
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > 7 {
			continue
		}
		set.Add(time.Weekday(n - 1))
	}
	return set
}

func formatCustomDays(set WeekdaySet) string {
	var parts []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if set.Contains(d) {
			parts = append(parts, strconv.Itoa(int(d)+1))
		}
	}
	return strings.Join(parts, ",")
}

// ParseRecurrence decodes the stored (mode, customDays) pair. An
// unrecognized mode decodes as a custom rule with an empty day set.
func ParseRecurrence(mode, customDays string) Recurrence {
	switch strings.ToUpper(strings.TrimSpace(mode)) {
	case "DAILY":
		return Recurrence{Mode: RepeatDaily}
	case "WEEKDAYS":
		return Recurrence{Mode: RepeatWeekdays}
	case "WEEKENDS":
		return Recurrence{Mode: RepeatWeekends}
	default:
		return Recurrence{Mode: RepeatCustom, Days: parseCustomDays(customDays)}
	}
}

func (r Recurrence) encode() (mode, customDays string) {
	if r.Mode == RepeatCustom {
		return r.Mode.String(), formatCustomDays(r.Days)
	}
	return r.Mode.String(), ""
}

// AppliesOn reports whether the rule covers the given weekday.
func (r Recurrence) AppliesOn(d time.Weekday) bool {
	switch r.Mode {
	case RepeatDaily:
		return true
	case RepeatWeekdays:
		return d >= time.Monday && d <= time.Friday
	case RepeatWeekends:
		return d == time.Saturday || d == time.Sunday
	case RepeatCustom:
		return r.Days.Contains(d)
	}
	return false
}
