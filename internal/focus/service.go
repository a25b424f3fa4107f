package focus

import (
	"context"
	"errors"
	"sort"
	"time"

	"hydraping/internal/water"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Service owns focus-window persistence and wires the pure engine to the
// intake log. Sum is injected (the water repository provides it) so the
// engine itself never touches storage.
type Service struct {
	DB  *gorm.DB
	Sum func(ctx context.Context, userID uint64, start, end time.Time) (int, error)
}

type CreateWindowInput struct {
	StartHour      int
	StartMinute    int
	EndHour        int
	EndMinute      int
	TargetAmountMl int
	Recurrence     Recurrence
}

// Create validates the candidate against the user's existing windows and
// persists it. A failed validation is returned as a result, not an error.
func (s *Service) Create(ctx context.Context, userID uint64, in CreateWindowInput, rejectOverlap bool) (*Window, ValidationResult, error) {
	w := Window{
		UserID:         userID,
		StartHour:      in.StartHour,
		StartMinute:    in.StartMinute,
		EndHour:        in.EndHour,
		EndMinute:      in.EndMinute,
		TargetAmountMl: in.TargetAmountMl,
		IsActive:       true,
	}
	w.SetRecurrence(in.Recurrence)

	others, err := s.List(ctx, userID)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	if res := Validate(w, others, rejectOverlap, time.Now()); !res.Ok {
		return nil, res, nil
	}

	if err := s.DB.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, ValidationResult{}, err
	}
	return &w, valid(), nil
}

// Update rewrites an existing window's definition, revalidating it with
// the window itself excluded from the overlap check.
func (s *Service) Update(ctx context.Context, userID, id uint64, in CreateWindowInput, rejectOverlap bool) (*Window, ValidationResult, error) {
	w, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, ValidationResult{}, err
	}

	w.StartHour = in.StartHour
	w.StartMinute = in.StartMinute
	w.EndHour = in.EndHour
	w.EndMinute = in.EndMinute
	w.TargetAmountMl = in.TargetAmountMl
	w.SetRecurrence(in.Recurrence)

	others, err := s.List(ctx, userID)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	if res := Validate(*w, others, rejectOverlap, time.Now()); !res.Ok {
		return nil, res, nil
	}

	if err := s.DB.WithContext(ctx).Save(w).Error; err != nil {
		return nil, ValidationResult{}, err
	}
	return w, valid(), nil
}

func (s *Service) Get(ctx context.Context, userID, id uint64) (*Window, error) {
	var w Window
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// List returns all of the user's windows, inactive included, ordered by
// start time then id.
func (s *Service) List(ctx context.Context, userID uint64) ([]Window, error) {
	var ws []Window
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_hour asc, start_minute asc, id asc").
		Find(&ws).Error
	return ws, err
}

func (s *Service) Delete(ctx context.Context, userID, id uint64) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Window{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) SetActive(ctx context.Context, userID, id uint64, active bool) error {
	res := s.DB.WithContext(ctx).Model(&Window{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TodayProgress loads the user's windows sorted by start time and runs
// the engine against the intake log at ref.
func (s *Service) TodayProgress(ctx context.Context, userID uint64, ref time.Time) ([]Progress, error) {
	ws, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	// List already sorts by start time; keep the guarantee explicit since
	// FindActiveWindow's pick depends on it.
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].startMinutes() < ws[j].startMinutes()
	})
	sum, sumErr := water.AdaptSum(func(start, end time.Time) (int, error) {
		return s.Sum(ctx, userID, start, end)
	})
	out := ComputeTodayProgress(ws, ref, sum)
	if err := sumErr(); err != nil {
		return nil, err
	}
	return out, nil
}
