package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constSum(ml int) SumFunc {
	return func(start, end time.Time) int { return ml }
}

// 2024-03-12 is a Tuesday.
func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 12, hour, minute, 0, 0, time.UTC)
}

func TestComputeProgressActiveMidWindow(t *testing.T) {
	// window 09:00–11:00, target 500ml, now 10:00, consumed 200ml
	p := ComputeProgress(win(9, 0, 11, 0), at(10, 0), constSum(200))

	assert.Equal(t, StatusActive, p.Status)
	assert.Equal(t, 200, p.ConsumedMl)
	assert.Equal(t, 300, p.RemainingMl())
	assert.InDelta(t, 0.4, p.Fraction(), 1e-9)
}

func TestComputeProgressStatusPriority(t *testing.T) {
	w := win(9, 0, 11, 0) // target 500

	tests := []struct {
		name     string
		now      time.Time
		consumed int
		want     Status
	}{
		{"before start", at(8, 0), 0, StatusUpcoming},
		{"at start boundary", at(9, 0), 0, StatusActive},
		{"inside", at(10, 30), 100, StatusActive},
		{"at end boundary", at(11, 0), 100, StatusMissed},
		{"after end", at(15, 0), 499, StatusMissed},
		{"completed inside window", at(10, 0), 500, StatusCompleted},
		{"completed before start", at(8, 0), 500, StatusCompleted},
		{"completed after end", at(12, 0), 700, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProgress(w, tt.now, constSum(tt.consumed))
			assert.Equal(t, tt.want, p.Status)
		})
	}
}

func TestComputeProgressOvernightWindow(t *testing.T) {
	w := win(22, 0, 6, 0) // 22:00–06:00

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		// 23:30 -> nowMinutes 1410 in [1320, 1800)
		{"active before midnight", at(23, 30), StatusActive},
		// 02:00 is before tonight's nominal start; today's instance is upcoming
		{"early morning upcoming", at(2, 0), StatusUpcoming},
		{"afternoon upcoming", at(15, 0), StatusUpcoming},
		{"at start", at(22, 0), StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProgress(w, tt.now, constSum(0))
			assert.Equal(t, tt.want, p.Status)
		})
	}
}

func TestComputeProgressOvernightBoundsSpanTwoDays(t *testing.T) {
	w := win(22, 0, 6, 0)
	var gotStart, gotEnd time.Time
	sum := func(start, end time.Time) int {
		gotStart, gotEnd = start, end
		return 0
	}

	ComputeProgress(w, at(23, 30), sum)

	assert.Equal(t, 12, gotStart.Day())
	assert.Equal(t, 13, gotEnd.Day())
}

func TestComputeProgressIdempotent(t *testing.T) {
	w := win(9, 0, 11, 0)
	ref := at(10, 15)

	a := ComputeProgress(w, ref, constSum(350))
	b := ComputeProgress(w, ref, constSum(350))

	assert.Equal(t, a, b)
}

func TestComputeProgressMonotonicCompletion(t *testing.T) {
	w := win(9, 0, 11, 0)
	refs := []time.Time{at(8, 0), at(10, 0), at(12, 0)}

	for _, ref := range refs {
		completed := false
		for consumed := 0; consumed <= 700; consumed += 50 {
			p := ComputeProgress(w, ref, constSum(consumed))
			if completed {
				require.Equal(t, StatusCompleted, p.Status,
					"status regressed from COMPLETED at consumed=%d ref=%s", consumed, ref)
			}
			if p.Status == StatusCompleted {
				completed = true
			}
			if consumed >= w.TargetAmountMl {
				require.Equal(t, StatusCompleted, p.Status)
			}
		}
	}
}

func TestComputeProgressZeroTarget(t *testing.T) {
	w := win(9, 0, 11, 0)
	w.TargetAmountMl = 0

	p := ComputeProgress(w, at(10, 0), constSum(0))

	assert.Equal(t, float64(0), p.Fraction())
	// zero consumed meets a zero target
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, 0, p.RemainingMl())
}

func TestComputeTodayProgressFilters(t *testing.T) {
	morning := win(9, 0, 11, 0)

	inactive := win(12, 0, 13, 0)
	inactive.IsActive = false

	weekendOnly := win(14, 0, 15, 0)
	weekendOnly.SetRecurrence(Recurrence{Mode: RepeatWeekends})

	evening := win(18, 0, 20, 0)

	// ref is a Tuesday
	got := ComputeTodayProgress([]Window{morning, inactive, weekendOnly, evening}, at(10, 0), constSum(0))

	require.Len(t, got, 2)
	// input order preserved
	assert.Equal(t, morning.TimeRangeLabel(), got[0].Window.TimeRangeLabel())
	assert.Equal(t, evening.TimeRangeLabel(), got[1].Window.TimeRangeLabel())
}

func TestFindActiveWindowFirstMatch(t *testing.T) {
	a := ComputeProgress(win(9, 0, 12, 0), at(10, 0), constSum(0))
	b := ComputeProgress(win(9, 30, 12, 30), at(10, 0), constSum(0))
	require.Equal(t, StatusActive, a.Status)
	require.Equal(t, StatusActive, b.Status)

	active := FindActiveWindow([]Progress{a, b})
	require.NotNil(t, active)
	assert.Equal(t, a.Window.TimeRangeLabel(), active.Window.TimeRangeLabel())

	assert.Nil(t, FindActiveWindow(nil))

	done := ComputeProgress(win(9, 0, 12, 0), at(10, 0), constSum(999))
	assert.Nil(t, FindActiveWindow([]Progress{done}))
}

func TestProgressFractionClamped(t *testing.T) {
	p := ComputeProgress(win(9, 0, 11, 0), at(10, 0), constSum(1500))
	assert.Equal(t, float64(1), p.Fraction())
	assert.Equal(t, 0, p.RemainingMl())
}
