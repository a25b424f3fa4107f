package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendedGoalMl(t *testing.T) {
	s := Default(1)

	s.WeightKg = 70
	s.ActivityLevel = "High"
	assert.Equal(t, 70*35+500, s.RecommendedGoalMl())

	s.ActivityLevel = "Moderate"
	assert.Equal(t, 70*35+250, s.RecommendedGoalMl())

	s.ActivityLevel = "Low"
	assert.Equal(t, 70*35, s.RecommendedGoalMl())
}

func TestEffectiveGoalMl(t *testing.T) {
	s := Default(1)
	s.DailyGoalMl = 1800
	assert.Equal(t, 1800, s.EffectiveGoalMl())

	s.AutoCalculateGoal = true
	assert.Equal(t, s.RecommendedGoalMl(), s.EffectiveGoalMl())
}

func TestInSleepWindowWrapsMidnight(t *testing.T) {
	s := Default(1) // 22:00–07:00

	assert.True(t, s.InSleepWindow(23))
	assert.True(t, s.InSleepWindow(22))
	assert.True(t, s.InSleepWindow(3))
	assert.False(t, s.InSleepWindow(7))
	assert.False(t, s.InSleepWindow(12))

	// non-wrapping window
	s.SleepStartHour, s.SleepEndHour = 1, 6
	assert.True(t, s.InSleepWindow(1))
	assert.True(t, s.InSleepWindow(5))
	assert.False(t, s.InSleepWindow(6))
	assert.False(t, s.InSleepWindow(23))
}
