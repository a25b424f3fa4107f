package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsShortWindow(t *testing.T) {
	res := Validate(win(10, 0, 10, 10), nil, false, at(9, 0))

	assert.False(t, res.Ok)
	assert.Equal(t, "window too short", res.Reason)
}

func TestValidateRejectsZeroSpan(t *testing.T) {
	res := Validate(win(10, 0, 10, 0), nil, false, at(9, 0))

	assert.False(t, res.Ok)
	assert.Equal(t, "end time must be after start time", res.Reason)
}

func TestValidateRejectsBadClock(t *testing.T) {
	w := win(24, 0, 11, 0)
	res := Validate(w, nil, false, at(9, 0))
	assert.False(t, res.Ok)

	w = win(9, 0, 11, 60)
	res = Validate(w, nil, false, at(9, 0))
	assert.False(t, res.Ok)
}

func TestValidateAcceptsOvernight(t *testing.T) {
	res := Validate(win(22, 0, 6, 0), nil, false, at(9, 0))
	assert.True(t, res.Ok, "overnight window should not fail the ordering check: %s", res.Reason)
}

func TestValidateOvernightDuration(t *testing.T) {
	// 23:55–00:05 is ten minutes once normalized across midnight
	res := Validate(win(23, 55, 0, 5), nil, false, at(9, 0))
	assert.False(t, res.Ok)
	assert.Equal(t, "window too short", res.Reason)

	// 23:50–00:05 is exactly fifteen
	res = Validate(win(23, 50, 0, 5), nil, false, at(9, 0))
	assert.True(t, res.Ok)
}

func TestValidateMinimumDurationBoundary(t *testing.T) {
	assert.False(t, Validate(win(10, 0, 10, 14), nil, false, at(9, 0)).Ok)
	assert.True(t, Validate(win(10, 0, 10, 15), nil, false, at(9, 0)).Ok)
}

func TestValidateOverlap(t *testing.T) {
	existing := win(9, 0, 11, 0)
	existing.ID = 1
	ref := at(8, 0)

	tests := []struct {
		name      string
		candidate Window
		reject    bool
		wantOk    bool
	}{
		{"inside existing", win(9, 30, 10, 30), true, false},
		{"straddles start", win(8, 0, 9, 30), true, false},
		{"touching end is fine (open interval)", win(11, 0, 12, 0), true, true},
		{"touching start is fine", win(8, 0, 9, 0), true, true},
		{"disjoint", win(14, 0, 15, 0), true, true},
		{"overlap allowed when disabled", win(9, 30, 10, 30), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.candidate, []Window{existing}, tt.reject, ref)
			assert.Equal(t, tt.wantOk, res.Ok, "reason=%q", res.Reason)
		})
	}
}

func TestValidateOverlapSkipsSelfAndInactive(t *testing.T) {
	existing := win(9, 0, 11, 0)
	existing.ID = 7
	ref := at(8, 0)

	// editing window 7 against itself
	edited := win(9, 30, 10, 30)
	edited.ID = 7
	assert.True(t, Validate(edited, []Window{existing}, true, ref).Ok)

	// inactive windows don't block
	existing.IsActive = false
	other := win(9, 30, 10, 30)
	assert.True(t, Validate(other, []Window{existing}, true, ref).Ok)
}

func TestValidateOverlapOvernightVsMorning(t *testing.T) {
	// 22:00–06:00 resolved today spans into tomorrow; a 05:00–06:00
	// window resolved today is this morning, before tonight's instance,
	// so they do not collide on today's bounds.
	night := win(22, 0, 6, 0)
	night.ID = 1
	morning := win(5, 0, 6, 0)

	res := Validate(morning, []Window{night}, true, at(8, 0))
	assert.True(t, res.Ok, "reason=%q", res.Reason)

	// a late-evening window does collide with tonight's instance
	late := win(23, 0, 23, 30)
	res = Validate(late, []Window{night}, true, at(8, 0))
	assert.False(t, res.Ok)
}

func TestValidateRuleOrder(t *testing.T) {
	// a window that is both degenerate and overlapping reports the
	// ordering failure first
	existing := win(9, 0, 11, 0)
	existing.ID = 1

	res := Validate(win(10, 0, 10, 0), []Window{existing}, true, at(8, 0))
	assert.Equal(t, "end time must be after start time", res.Reason)
}
