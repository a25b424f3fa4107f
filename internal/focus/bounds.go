package focus

import "time"

// ResolveBounds converts a window's wall-clock times into absolute
// [start, end) instants on ref's calendar day, in ref's location.
// For overnight windows the end lands on the next calendar day, so
// end.After(start) always holds on return.
func ResolveBounds(w Window, ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	loc := ref.Location()
	start = time.Date(y, m, d, w.StartHour, w.StartMinute, 0, 0, loc)
	end = time.Date(y, m, d, w.EndHour, w.EndMinute, 0, 0, loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
