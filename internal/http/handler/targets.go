package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hydraping/internal/auth"
	"hydraping/internal/focus"
	"hydraping/internal/settings"

	"github.com/go-chi/chi/v5"
)

type TargetHandler struct {
	Svc      *focus.Service
	Settings *settings.Service
}

type targetReq struct {
	StartHour      int    `json:"start_hour"`
	StartMinute    int    `json:"start_minute"`
	EndHour        int    `json:"end_hour"`
	EndMinute      int    `json:"end_minute"`
	TargetAmountMl int    `json:"target_amount_ml"`
	RepeatMode     string `json:"repeat_mode"`
	CustomDays     string `json:"custom_days"`
}

func (req targetReq) toInput() focus.CreateWindowInput {
	return focus.CreateWindowInput{
		StartHour:      req.StartHour,
		StartMinute:    req.StartMinute,
		EndHour:        req.EndHour,
		EndMinute:      req.EndMinute,
		TargetAmountMl: req.TargetAmountMl,
		Recurrence:     focus.ParseRecurrence(req.RepeatMode, req.CustomDays),
	}
}

func (h *TargetHandler) rejectOverlap(r *http.Request, uid uint64) bool {
	st, err := h.Settings.Get(r.Context(), uid)
	if err != nil {
		return true // safest default when settings are unreadable
	}
	return !st.OverlapAllowed
}

func (h *TargetHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req targetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.TargetAmountMl <= 0 {
		http.Error(w, "target_amount_ml must be positive", http.StatusBadRequest)
		return
	}

	win, res, err := h.Svc.Create(r.Context(), uid, req.toInput(), h.rejectOverlap(r, uid))
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !res.Ok {
		writeValidation(w, res)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(win)
}

func (h *TargetHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id64, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req targetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.TargetAmountMl <= 0 {
		http.Error(w, "target_amount_ml must be positive", http.StatusBadRequest)
		return
	}

	win, res, err := h.Svc.Update(r.Context(), uid, id64, req.toInput(), h.rejectOverlap(r, uid))
	switch {
	case err == focus.ErrNotFound:
		http.Error(w, "not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	case !res.Ok:
		writeValidation(w, res)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(win)
}

func (h *TargetHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	ws, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ws)
}

func (h *TargetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id64, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch err := h.Svc.Delete(r.Context(), uid, id64); err {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case focus.ErrNotFound:
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

type toggleReq struct {
	Active bool `json:"active"`
}

func (h *TargetHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id64, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req toggleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	switch err := h.Svc.SetActive(r.Context(), uid, id64, req.Active); err {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case focus.ErrNotFound:
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

type progressDTO struct {
	Window      windowDTO    `json:"window"`
	ConsumedMl  int          `json:"consumed_ml"`
	RemainingMl int          `json:"remaining_ml"`
	Fraction    float64      `json:"fraction"`
	Status      focus.Status `json:"status"`
}

type windowDTO struct {
	ID             uint64 `json:"id"`
	TimeRange      string `json:"time_range"`
	StartHour      int    `json:"start_hour"`
	StartMinute    int    `json:"start_minute"`
	EndHour        int    `json:"end_hour"`
	EndMinute      int    `json:"end_minute"`
	TargetAmountMl int    `json:"target_amount_ml"`
	RepeatMode     string `json:"repeat_mode"`
	CustomDays     string `json:"custom_days"`
}

type todayProgressDTO struct {
	Progress []progressDTO `json:"progress"`
	Active   *progressDTO  `json:"active_window"`
}

// Progress evaluates today's applicable windows. Clients poll this (the
// app refreshes every 30s and after each log).
func (h *TargetHandler) Progress(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	list, err := h.Svc.TodayProgress(r.Context(), uid, time.Now())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := todayProgressDTO{Progress: make([]progressDTO, 0, len(list))}
	for _, p := range list {
		out.Progress = append(out.Progress, toProgressDTO(p))
	}
	if active := focus.FindActiveWindow(list); active != nil {
		dto := toProgressDTO(*active)
		out.Active = &dto
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func toProgressDTO(p focus.Progress) progressDTO {
	return progressDTO{
		Window: windowDTO{
			ID:             p.Window.ID,
			TimeRange:      p.Window.TimeRangeLabel(),
			StartHour:      p.Window.StartHour,
			StartMinute:    p.Window.StartMinute,
			EndHour:        p.Window.EndHour,
			EndMinute:      p.Window.EndMinute,
			TargetAmountMl: p.Window.TargetAmountMl,
			RepeatMode:     p.Window.RepeatMode,
			CustomDays:     p.Window.CustomDays,
		},
		ConsumedMl:  p.ConsumedMl,
		RemainingMl: p.RemainingMl(),
		Fraction:    p.Fraction(),
		Status:      p.Status,
	}
}

func writeValidation(w http.ResponseWriter, res focus.ValidationResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(res)
}
