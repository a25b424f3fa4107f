package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hydraping/internal/auth"
	"hydraping/internal/settings"
	"hydraping/internal/water"

	"github.com/go-chi/chi/v5"
)

type WaterHandler struct {
	Repo     *water.Repo
	Settings *settings.Service
}

type logWaterReq struct {
	AmountMl int `json:"amount_ml"`
}

func (h *WaterHandler) Log(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req logWaterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.AmountMl <= 0 {
		http.Error(w, "amount_ml must be positive", http.StatusBadRequest)
		return
	}

	e, err := h.Repo.Log(r.Context(), uid, req.AmountMl, time.Now())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

func (h *WaterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id64, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch err := h.Repo.Delete(r.Context(), uid, id64); err {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case water.ErrNotFound:
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

type todayDTO struct {
	TotalMl     int                 `json:"total_ml"`
	DailyGoalMl int                 `json:"daily_goal_ml"`
	GoalReached bool                `json:"goal_reached"`
	Streak      int                 `json:"streak"`
	Insight     string              `json:"insight"`
	Entries     []water.IntakeEvent `json:"entries"`
}

// Today is the home-screen payload: today's entries and total, the
// effective goal, the streak and the insight line.
func (h *WaterHandler) Today(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	ctx := r.Context()

	st, err := h.Settings.Get(ctx, uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	start, end := water.DayBounds(now)

	entries, err := h.Repo.EntriesBetween(ctx, uid, start, end)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	sum, sumErr := water.AdaptSum(func(s, e time.Time) (int, error) {
		return h.Repo.SumRange(ctx, uid, s, e)
	})
	total := sum(start, end)
	goal := st.EffectiveGoalMl()
	streak := water.Streak(goal, now, sum)
	if err := sumErr(); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(todayDTO{
		TotalMl:     total,
		DailyGoalMl: goal,
		GoalReached: total >= goal,
		Streak:      streak,
		Insight:     water.InsightText(total, goal, streak, now.Hour()),
		Entries:     entries,
	})
}

type historyDTO struct {
	Days          []water.DailySummary `json:"days"`
	WeeklyAverage int                  `json:"weekly_average_ml"`
	Streak        int                  `json:"streak"`
	DailyGoalMl   int                  `json:"daily_goal_ml"`
}

// History returns the trailing N daily summaries, oldest first for
// charting, plus the average and streak.
func (h *WaterHandler) History(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	ctx := r.Context()

	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}

	st, err := h.Settings.Get(ctx, uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	sum, sumErr := water.AdaptSum(func(s, e time.Time) (int, error) {
		return h.Repo.SumRange(ctx, uid, s, e)
	})
	summaries := water.DailySummaries(days, now, sum, nil)
	avg := water.WeeklyAverage(summaries)

	// engine computes today-first; the chart wants oldest-first
	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}

	goal := st.EffectiveGoalMl()
	streak := water.Streak(goal, now, sum)
	if err := sumErr(); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(historyDTO{
		Days:          summaries,
		WeeklyAverage: avg,
		Streak:        streak,
		DailyGoalMl:   goal,
	})
}
