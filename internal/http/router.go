package http

import (
	"net/http"

	"hydraping/internal/auth"
	"hydraping/internal/config"
	"hydraping/internal/focus"
	"hydraping/internal/http/handler"
	mw "hydraping/internal/http/middleware"
	"hydraping/internal/jobs"
	"hydraping/internal/settings"
	"hydraping/internal/water"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	jobsRepo := &jobs.Repo{DB: db}
	settingsSvc := &settings.Service{DB: db}
	waterRepo := &water.Repo{DB: db}
	focusSvc := &focus.Service{DB: db, Sum: waterRepo.SumRange}

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, Jobs: jobsRepo}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	wh := &handler.WaterHandler{Repo: waterRepo, Settings: settingsSvc}
	r.Route("/water", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", wh.Log)
		r.Get("/today", wh.Today)
		r.Get("/history", wh.History)
		r.Delete("/{id}", wh.Delete)
	})

	th := &handler.TargetHandler{Svc: focusSvc, Settings: settingsSvc}
	r.Route("/targets", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", th.Create)
		r.Get("/", th.List)
		r.Get("/progress", th.Progress)

		r.Put("/{id}", th.Update)
		r.Delete("/{id}", th.Delete)
		r.Post("/{id}/toggle", th.Toggle)
	})

	sh := &handler.SettingsHandler{Svc: settingsSvc, Jobs: jobsRepo}
	r.Route("/settings", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", sh.Get)
		r.Put("/", sh.Update)
	})

	return r
}
