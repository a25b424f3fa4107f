package water

import "fmt"

// InsightText builds the one-line home-screen nudge from today's total,
// the daily goal, the streak and the hour of day. Empty when no goal is
// set.
func InsightText(totalMl, goalMl, streak, hour int) string {
	if goalMl <= 0 {
		return ""
	}
	pct := totalMl * 100 / goalMl
	remaining := goalMl - totalMl
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case totalMl >= goalMl && streak > 2:
		return fmt.Sprintf("Goal met! %d-day streak 🔥", streak)
	case totalMl >= goalMl:
		return "Goal reached! Keep it up!"
	case pct >= 75:
		return fmt.Sprintf("Almost there — %dml to go", remaining)
	case pct >= 50 && hour < 15:
		return "On track — ahead of schedule"
	case pct >= 50:
		return "Halfway there, keep sipping"
	case pct >= 25 && hour >= 17:
		return fmt.Sprintf("Behind by %dml — you got this", remaining)
	case hour < 10:
		return "Good morning! Start sipping early"
	case hour >= 20 && pct < 50:
		return fmt.Sprintf("Behind by %dml — hydrate before bed", remaining)
	default:
		return fmt.Sprintf("Stay hydrated — %dml remaining", remaining)
	}
}
