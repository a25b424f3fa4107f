package focus

import "time"

// SumFunc totals intake (ml) for all entries with start <= timestamp < end.
// The half-open range query is the engine's only view of the intake log.
type SumFunc func(start, end time.Time) int

// ComputeProgress evaluates one window at ref. Consumption is summed over
// the window's absolute bounds for ref's day; the time-based status check
// uses day-relative minutes with the end normalized past 1440 for
// overnight windows, so a window running 22:00–06:00 is ACTIVE at 23:30
// and UPCOMING at 02:00 (tonight's instance has not started yet).
//
// Status priority, first match wins:
//
//	consumed >= target          -> COMPLETED (even outside the window)
//	now in [start, end)         -> ACTIVE
//	now before start            -> UPCOMING
//	otherwise                   -> MISSED
func ComputeProgress(w Window, ref time.Time, sum SumFunc) Progress {
	start, end := ResolveBounds(w, ref)
	consumed := sum(start, end)

	nowMinutes := ref.Hour()*60 + ref.Minute()
	startMinutes := w.startMinutes()
	endMinutes := w.endMinutes()
	if endMinutes <= startMinutes {
		endMinutes += 24 * 60
	}

	var status Status
	switch {
	case consumed >= w.TargetAmountMl:
		status = StatusCompleted
	case nowMinutes >= startMinutes && nowMinutes < endMinutes:
		status = StatusActive
	case nowMinutes < startMinutes:
		status = StatusUpcoming
	default:
		status = StatusMissed
	}

	return Progress{Window: w, ConsumedMl: consumed, Status: status}
}

// ComputeTodayProgress evaluates every window that is active and whose
// recurrence covers ref's weekday, preserving input order. Callers wanting
// a deterministic active-window pick should sort by start time first.
func ComputeTodayProgress(windows []Window, ref time.Time, sum SumFunc) []Progress {
	day := ref.Weekday()
	out := make([]Progress, 0, len(windows))
	for _, w := range windows {
		if !w.IsActive || !w.Recurrence().AppliesOn(day) {
			continue
		}
		out = append(out, ComputeProgress(w, ref, sum))
	}
	return out
}

// FindActiveWindow returns the first ACTIVE entry, or nil. Only one window
// is surfaced even when several are concurrently active; order is the
// caller's.
func FindActiveWindow(progress []Progress) *Progress {
	for i := range progress {
		if progress[i].Status == StatusActive {
			return &progress[i]
		}
	}
	return nil
}
