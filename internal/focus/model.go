package focus

import (
	"fmt"
	"time"
)

// Window is a recurring time-boxed hydration sub-goal ("drink 500ml
// between 9:00 and 11:00"). Start/end are local wall-clock times of day;
// end <= start means the window crosses midnight.
type Window struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"index;not null"`

	StartHour   int `gorm:"not null"`
	StartMinute int `gorm:"not null"`
	EndHour     int `gorm:"not null"`
	EndMinute   int `gorm:"not null"`

	TargetAmountMl int `gorm:"not null"`

	// Recurrence is persisted stringly (mode name + comma-separated day
	// list); use Recurrence()/SetRecurrence for the typed view.
	RepeatMode string `gorm:"type:text;not null;default:'DAILY'"`
	CustomDays string `gorm:"type:text;not null;default:''"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Window) TableName() string { return "focus_windows" }

func (w Window) startMinutes() int { return w.StartHour*60 + w.StartMinute }
func (w Window) endMinutes() int   { return w.EndHour*60 + w.EndMinute }

// Overnight reports whether the window crosses midnight.
func (w Window) Overnight() bool { return w.endMinutes() <= w.startMinutes() }

// DurationMinutes is the nominal window length, normalized for overnight
// windows.
func (w Window) DurationMinutes() int {
	start, end := w.startMinutes(), w.endMinutes()
	if end > start {
		return end - start
	}
	return (24*60 - start) + end
}

// TimeRangeLabel renders "09:00–11:00" for display.
func (w Window) TimeRangeLabel() string {
	return fmt.Sprintf("%02d:%02d–%02d:%02d", w.StartHour, w.StartMinute, w.EndHour, w.EndMinute)
}

// Recurrence returns the typed recurrence rule decoded from the stored
// representation. Unknown mode strings decode as a custom rule with no
// days, i.e. a window that never applies.
func (w Window) Recurrence() Recurrence {
	return ParseRecurrence(w.RepeatMode, w.CustomDays)
}

// SetRecurrence stores the typed rule back into the persisted columns.
func (w *Window) SetRecurrence(r Recurrence) {
	w.RepeatMode, w.CustomDays = r.encode()
}

// Status classifies a window at a point in time.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusMissed    Status = "MISSED"

	// StatusExpired is declared for callers that want to present an ended
	// window neutrally. The progress computation never assigns it.
	StatusExpired Status = "EXPIRED"
)

// Progress is the derived, point-in-time evaluation of one window.
// Never persisted; recomputed from the intake log and the current time.
type Progress struct {
	Window     Window `json:"window"`
	ConsumedMl int    `json:"consumed_ml"`
	Status     Status `json:"status"`
}

// RemainingMl is the amount still to drink, floored at zero.
func (p Progress) RemainingMl() int {
	if r := p.Window.TargetAmountMl - p.ConsumedMl; r > 0 {
		return r
	}
	return 0
}

// Fraction is consumed/target clamped to [0, 1]; zero when the target is
// zero so callers never divide by zero.
func (p Progress) Fraction() float64 {
	if p.Window.TargetAmountMl <= 0 {
		return 0
	}
	f := float64(p.ConsumedMl) / float64(p.Window.TargetAmountMl)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
