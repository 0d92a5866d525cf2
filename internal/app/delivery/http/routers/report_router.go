package routers

import (
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/delivery/http/middlewares"
	"simoly-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRouter(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, reportController *reports.ReportController) {
	// Generation fans out to the model provider, so it gets its own stricter
	// per-IP limiter with temporary blocking on abuse.
	generateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.GenerateRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.GenerateBlockTimeInMinutes)*time.Minute,
	)

	router.Group(func(r chi.Router) {
		r.Use(generateLimiter.Limit)
		r.Post("/generate", reportController.GenerateReport)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Use(mw.Authentication)
		r.Get("/", reportController.FindReports)
		r.Get("/{report_id}", reportController.FindReportByID)
	})
}
