package water

import "time"

// SumFunc totals intake (ml) for start <= timestamp < end. Mirrors the
// focus engine's injected query; the repository provides both.
type SumFunc func(start, end time.Time) int

// AdaptSum bridges the repository's fallible range query to the pure
// sum the aggregation and progress engines consume. A failed call
// yields zero; the second return reports the first error once
// evaluation is done, so a transient read error surfaces instead of
// silently zeroing totals.
func AdaptSum(query func(start, end time.Time) (int, error)) (func(start, end time.Time) int, func() error) {
	var firstErr error
	sum := func(start, end time.Time) int {
		n, err := query(start, end)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return 0
		}
		return n
	}
	return sum, func() error { return firstErr }
}

// DayLabeler renders the short weekday label for a day start.
type DayLabeler func(dayStart time.Time) string

// DefaultDayLabeler yields "Mon", "Tue", ...
func DefaultDayLabeler(dayStart time.Time) string { return dayStart.Format("Mon") }

// DayBounds returns the local-midnight [start, end) range containing t.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailySummaries computes n day totals walking backward from ref's day,
// most recent first. Day ranges are contiguous and non-overlapping.
func DailySummaries(n int, ref time.Time, sum SumFunc, label DayLabeler) []DailySummary {
	if label == nil {
		label = DefaultDayLabeler
	}
	out := make([]DailySummary, 0, n)
	day := ref
	for i := 0; i < n; i++ {
		start, end := DayBounds(day)
		out = append(out, DailySummary{
			DayStart: start,
			TotalMl:  sum(start, end),
			DayLabel: label(start),
		})
		day = start.AddDate(0, 0, -1)
	}
	return out
}

// Streak counts consecutive days meeting goalMl, starting from yesterday
// and walking backward until the first miss. Today is excluded: an
// in-progress day can neither break nor extend the streak. A day with no
// entries totals zero and ends the walk, so the scan is bounded by the
// log's history; a non-positive goal returns zero rather than walking
// forever.
func Streak(goalMl int, ref time.Time, sum SumFunc) int {
	if goalMl <= 0 {
		return 0
	}
	streak := 0
	todayStart, _ := DayBounds(ref)
	day := todayStart.AddDate(0, 0, -1)
	for {
		start, end := DayBounds(day)
		if sum(start, end) < goalMl {
			return streak
		}
		streak++
		day = start.AddDate(0, 0, -1)
	}
}

// WeeklyAverage is the mean of the summaries' totals, zero for none.
func WeeklyAverage(summaries []DailySummary) int {
	if len(summaries) == 0 {
		return 0
	}
	total := 0
	for _, s := range summaries {
		total += s.TotalMl
	}
	return total / len(summaries)
}
