package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"hydraping/internal/auth"
	"hydraping/internal/jobs"
	"hydraping/internal/settings"
)

type SettingsHandler struct {
	Svc  *settings.Service
	Jobs *jobs.Repo
}

type settingsDTO struct {
	settings.Settings
	RecommendedGoalMl int `json:"recommended_goal_ml"`
	EffectiveGoalMl   int `json:"effective_goal_ml"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	st, err := h.Svc.Get(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeSettings(w, st)
}

// Update applies a partial settings change, then reschedules the user's
// reminder chain so interval or notification changes take effect at once.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var in settings.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if in.DailyGoalMl != nil && *in.DailyGoalMl <= 0 {
		http.Error(w, "daily_goal_ml must be positive", http.StatusBadRequest)
		return
	}
	if bad(in.SleepStartHour) || bad(in.SleepEndHour) {
		http.Error(w, "sleep hours must be 0-23", http.StatusBadRequest)
		return
	}

	st, err := h.Svc.Update(r.Context(), uid, in)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	if st.NotificationsEnabled {
		interval := st.ReminderIntervalMinutes
		if interval < jobs.MinReminderIntervalMinutes {
			interval = jobs.MinReminderIntervalMinutes
		}
		if err := h.Jobs.Reschedule(uid, time.Now().Add(time.Duration(interval)*time.Minute)); err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
	} else {
		if err := h.Jobs.CancelPendingReminders(uid); err != nil {
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
	}

	writeSettings(w, st)
}

func bad(h *int) bool { return h != nil && (*h < 0 || *h > 23) }

func writeSettings(w http.ResponseWriter, st settings.Settings) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settingsDTO{
		Settings:          st,
		RecommendedGoalMl: st.RecommendedGoalMl(),
		EffectiveGoalMl:   st.EffectiveGoalMl(),
	})
}
