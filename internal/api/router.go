package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api/middleware"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/config"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	metalService *service.MetalService,
	settingService *service.SettingService,
	importService *service.ImportService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/metal", func(r chi.Router) {
			metalHandler := handlers.NewMetalHandler(metalService)
			r.Get("/", metalHandler.GetMetals)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/overview", metalHandler.GetOverview)
				r.Get("/chart", metalHandler.GetChart)
				r.Get("/performance", metalHandler.GetPerformance)
				r.Get("/summary", metalHandler.GetSummary)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingHandler := handlers.NewSettingHandler(settingService)
			r.Get("/theme", settingHandler.GetTheme)
			r.Put("/theme", settingHandler.SetTheme)
		})

		// Internal endpoints, API-key guarded
		r.Route("/developer", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			developerHandler := handlers.NewDeveloperHandler(importService)
			r.Post("/import-prices", developerHandler.ImportPrices)
		})
	})

	return r
}
