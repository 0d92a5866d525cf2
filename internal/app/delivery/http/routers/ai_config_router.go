package routers

import (
	"simoly-service/internal/app/delivery/http/middlewares"
	"simoly-service/internal/app/services/core/ai_configs"

	"github.com/go-chi/chi/v5"
)

func attachAIConfigRouter(router chi.Router, mw *middlewares.Middlewares, aiConfigController *ai_configs.AIConfigController) {
	router.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Use(mw.RequireSuperadminAPIKey)
		r.Post("/", aiConfigController.CreateAIConfig)
		r.Get("/latest", aiConfigController.FindLatestAIConfig)
	})
}
