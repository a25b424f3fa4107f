package focus

import "time"

// MinWindowMinutes is the smallest window a user may create.
const MinWindowMinutes = 15

// ValidationResult is Ok or carries a human-readable rejection reason.
// A rejection is an expected outcome surfaced to the UI, not an error.
type ValidationResult struct {
	Ok     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func valid() ValidationResult { return ValidationResult{Ok: true} }

func invalid(reason string) ValidationResult {
	return ValidationResult{Ok: false, Reason: reason}
}

// Validate checks a new or edited window. Rules run in order, first
// failure wins:
//
//  1. start and end must name a real time of day
//  2. end must differ from start (end == start is a degenerate span, not
//     a 24h window; genuine overnight windows with end < start are fine)
//  3. duration (overnight-normalized) must be at least MinWindowMinutes
//  4. when rejectOverlap is set, the candidate's resolved-today bounds
//     must not intersect any other active window's bounds (open-interval
//     test); others with the candidate's own ID are skipped so edits
//     don't collide with themselves
func Validate(candidate Window, others []Window, rejectOverlap bool, ref time.Time) ValidationResult {
	if !validClock(candidate.StartHour, candidate.StartMinute) ||
		!validClock(candidate.EndHour, candidate.EndMinute) {
		return invalid("time of day out of range")
	}
	if candidate.endMinutes() == candidate.startMinutes() {
		return invalid("end time must be after start time")
	}
	if candidate.DurationMinutes() < MinWindowMinutes {
		return invalid("window too short")
	}

	if rejectOverlap {
		cStart, cEnd := ResolveBounds(candidate, ref)
		for _, other := range others {
			if !other.IsActive || (candidate.ID != 0 && other.ID == candidate.ID) {
				continue
			}
			oStart, oEnd := ResolveBounds(other, ref)
			if cStart.Before(oEnd) && oStart.Before(cEnd) {
				return invalid("overlaps with " + other.TimeRangeLabel())
			}
		}
	}
	return valid()
}

func validClock(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
