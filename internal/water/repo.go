package water

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Repo persists the intake log and answers the range-sum query both the
// focus engine and the daily aggregator are built on.
type Repo struct {
	DB *gorm.DB
}

func (r *Repo) Log(ctx context.Context, userID uint64, amountMl int, at time.Time) (*IntakeEvent, error) {
	e := IntakeEvent{UserID: userID, AmountMl: amountMl, Timestamp: at}
	if err := r.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete hard-deletes one entry by id. No tombstone.
func (r *Repo) Delete(ctx context.Context, userID, id uint64) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&IntakeEvent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumRange totals amount_ml over the half-open [start, end) range.
// Missing rows sum to zero; a failed query must not.
func (r *Repo) SumRange(ctx context.Context, userID uint64, start, end time.Time) (int, error) {
	var total int
	err := r.DB.WithContext(ctx).Model(&IntakeEvent{}).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return total, err
}

// EntriesBetween lists entries in [start, end), newest first.
func (r *Repo) EntriesBetween(ctx context.Context, userID uint64, start, end time.Time) ([]IntakeEvent, error) {
	var out []IntakeEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp desc").
		Find(&out).Error
	return out, err
}
