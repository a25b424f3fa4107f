package jobs

import (
	"context"
	"log"
	"math"
	"time"

	"hydraping/internal/settings"
	"hydraping/internal/water"
)

// MinReminderIntervalMinutes floors user-configured intervals so a bad
// setting can't turn the queue into a busy loop. The settings handler
// applies the same floor when rescheduling.
const MinReminderIntervalMinutes = 15

// Queue is the slice of Repo the worker drives.
type Queue interface {
	Claim(workerID string) (*Job, error)
	EnqueueReminder(userID uint64, runAt time.Time) error
	MarkDone(id uint64) error
	MarkFailed(id uint64, errMsg string) error
	RetryLater(id uint64, attempts int, runAt time.Time, errMsg string) error
}

// SettingsSource yields a user's current reminder configuration.
type SettingsSource interface {
	Get(ctx context.Context, userID uint64) (settings.Settings, error)
}

// IntakeSource answers the day-total query that gives a reminder its
// remaining-ml context.
type IntakeSource interface {
	SumRange(ctx context.Context, userID uint64, start, end time.Time) (int, error)
}

// Worker claims due jobs and dispatches hydration reminders. Delivery is
// a log line; pushing to an actual device is the platform's problem, not
// this service's.
type Worker struct {
	ID       string
	Queue    Queue
	Settings SettingsSource
	Water    IntakeSource
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Queue.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeReminderDispatch:
		w.handleReminder(ctx, job)
	default:
		_ = w.Queue.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleReminder(ctx context.Context, job *Job) {
	st, err := w.Settings.Get(ctx, job.UserID)
	if err != nil {
		w.retry(job, "settings read error")
		return
	}

	// Notifications switched off since this was scheduled: drop the chain,
	// the settings handler re-enqueues when they come back on.
	if !st.NotificationsEnabled {
		_ = w.Queue.MarkDone(job.ID)
		return
	}

	now := time.Now()

	// Schedule the successor before delivering. A failed insert retries
	// the whole job, so the chain can't end on a transient error.
	interval := st.ReminderIntervalMinutes
	if interval < MinReminderIntervalMinutes {
		interval = MinReminderIntervalMinutes
	}
	if err := w.Queue.EnqueueReminder(job.UserID, now.Add(time.Duration(interval)*time.Minute)); err != nil {
		w.retry(job, "enqueue next reminder")
		return
	}

	if !st.InSleepWindow(now.Hour()) {
		start, end := water.DayBounds(now)
		total, err := w.Water.SumRange(ctx, job.UserID, start, end)
		if err != nil {
			// the reminder still goes out, just without the day total
			log.Printf("[REMINDER] user=%d (intake read failed: %v)\n", job.UserID, err)
		} else {
			remaining := st.EffectiveGoalMl() - total
			if remaining < 0 {
				remaining = 0
			}
			log.Printf("[REMINDER] user=%d total_ml=%d remaining_ml=%d\n", job.UserID, total, remaining)
		}
	}

	_ = w.Queue.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Queue.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Queue.RetryLater(job.ID, attempts, next, errMsg)
}
