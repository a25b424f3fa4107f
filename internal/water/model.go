package water

import "time"

// IntakeEvent is one logged drink. Append-only: rows are created on "log
// water" and hard-deleted by id, never mutated.
type IntakeEvent struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"-"`
	AmountMl  int       `gorm:"not null" json:"amount_ml"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (IntakeEvent) TableName() string { return "water_entries" }

// DailySummary is one day's total for the history view. Derived, never
// persisted.
type DailySummary struct {
	DayStart time.Time `json:"day_start"`
	TotalMl  int       `json:"total_ml"`
	DayLabel string    `json:"day_label"`
}
