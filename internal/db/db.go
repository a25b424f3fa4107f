package db

import (
	"fmt"

	"hydraping/internal/auth"
	"hydraping/internal/focus"
	"hydraping/internal/jobs"
	"hydraping/internal/settings"
	"hydraping/internal/water"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&water.IntakeEvent{},
		&focus.Window{},
		&settings.Settings{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// The range-sum query is the hot path: every progress refresh and every
	// history day hits it.
	stmts := []string{
		`create index if not exists idx_water_user_ts on water_entries(user_id, timestamp);`,
		`create index if not exists idx_focus_user_active on focus_windows(user_id, is_active);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
		`create index if not exists idx_jobs_user_type on jobs(user_id, type, status);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
