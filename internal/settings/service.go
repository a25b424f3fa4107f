package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	DB *gorm.DB
}

// Get loads the user's settings, returning defaults when no row exists.
func (s *Service) Get(ctx context.Context, userID uint64) (Settings, error) {
	var st Settings
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Default(userID), nil
	}
	if err != nil {
		return Settings{}, err
	}
	return st, nil
}

// UpdateInput carries a partial update; nil fields keep their value.
type UpdateInput struct {
	DailyGoalMl             *int    `json:"daily_goal_ml"`
	ReminderIntervalMinutes *int    `json:"reminder_interval_minutes"`
	SleepStartHour          *int    `json:"sleep_start_hour"`
	SleepEndHour            *int    `json:"sleep_end_hour"`
	NotificationsEnabled    *bool   `json:"notifications_enabled"`
	OverlapAllowed          *bool   `json:"overlap_allowed"`
	WeightKg                *int    `json:"weight_kg"`
	ActivityLevel           *string `json:"activity_level"`
	AutoCalculateGoal       *bool   `json:"auto_calculate_goal"`
}

// Update applies the partial update over the current (or default) row and
// upserts it.
func (s *Service) Update(ctx context.Context, userID uint64, in UpdateInput) (Settings, error) {
	st, err := s.Get(ctx, userID)
	if err != nil {
		return Settings{}, err
	}

	if in.DailyGoalMl != nil {
		st.DailyGoalMl = *in.DailyGoalMl
	}
	if in.ReminderIntervalMinutes != nil {
		st.ReminderIntervalMinutes = *in.ReminderIntervalMinutes
	}
	if in.SleepStartHour != nil {
		st.SleepStartHour = *in.SleepStartHour
	}
	if in.SleepEndHour != nil {
		st.SleepEndHour = *in.SleepEndHour
	}
	if in.NotificationsEnabled != nil {
		st.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.OverlapAllowed != nil {
		st.OverlapAllowed = *in.OverlapAllowed
	}
	if in.WeightKg != nil {
		st.WeightKg = *in.WeightKg
	}
	if in.ActivityLevel != nil {
		st.ActivityLevel = *in.ActivityLevel
	}
	if in.AutoCalculateGoal != nil {
		st.AutoCalculateGoal = *in.AutoCalculateGoal
	}

	// upsert: the row may not exist yet for users still on defaults
	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&st).Error; err != nil {
		return Settings{}, err
	}
	return st, nil
}
