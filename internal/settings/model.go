package settings

// Settings is the per-user configuration row. One row per user; reads
// fall back to defaults when the row doesn't exist yet.
type Settings struct {
	UserID uint64 `gorm:"primaryKey" json:"-"`

	DailyGoalMl             int  `gorm:"not null;default:2000" json:"daily_goal_ml"`
	ReminderIntervalMinutes int  `gorm:"not null;default:60" json:"reminder_interval_minutes"`
	SleepStartHour          int  `gorm:"not null;default:22" json:"sleep_start_hour"`
	SleepEndHour            int  `gorm:"not null;default:7" json:"sleep_end_hour"`
	NotificationsEnabled    bool `gorm:"not null;default:true" json:"notifications_enabled"`
	OverlapAllowed          bool `gorm:"not null;default:false" json:"overlap_allowed"`

	WeightKg          int    `gorm:"not null;default:70" json:"weight_kg"`
	ActivityLevel     string `gorm:"type:text;not null;default:'Moderate'" json:"activity_level"`
	AutoCalculateGoal bool   `gorm:"not null;default:false" json:"auto_calculate_goal"`
}

// Default returns the settings a user has before ever touching them.
func Default(userID uint64) Settings {
	return Settings{
		UserID:                  userID,
		DailyGoalMl:             2000,
		ReminderIntervalMinutes: 60,
		SleepStartHour:          22,
		SleepEndHour:            7,
		NotificationsEnabled:    true,
		OverlapAllowed:          false,
		WeightKg:                70,
		ActivityLevel:           "Moderate",
		AutoCalculateGoal:       false,
	}
}

// RecommendedGoalMl derives a daily goal from body weight and activity.
func (s Settings) RecommendedGoalMl() int {
	base := s.WeightKg * 35
	switch s.ActivityLevel {
	case "High":
		return base + 500
	case "Moderate":
		return base + 250
	default:
		return base
	}
}

// EffectiveGoalMl is the goal progress and streaks are measured against.
func (s Settings) EffectiveGoalMl() int {
	if s.AutoCalculateGoal {
		return s.RecommendedGoalMl()
	}
	return s.DailyGoalMl
}

// InSleepWindow reports whether hour falls inside the quiet hours,
// wrapping past midnight when sleep starts in the evening.
func (s Settings) InSleepWindow(hour int) bool {
	if s.SleepStartHour <= s.SleepEndHour {
		return hour >= s.SleepStartHour && hour < s.SleepEndHour
	}
	return hour >= s.SleepStartHour || hour < s.SleepEndHour
}
