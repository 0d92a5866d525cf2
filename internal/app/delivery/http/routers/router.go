package routers

import (
	"fmt"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/delivery/http/middlewares"
	"simoly-service/internal/app/services/core/ai_configs"
	questionnaireResponses "simoly-service/internal/app/services/core/questionnaire_responses"
	"simoly-service/internal/app/services/core/questionnaires"
	"simoly-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	reportController *reports.ReportController,
	questionnaireController *questionnaires.QuestionnaireController,
	questionnaireResponseController *questionnaireResponses.QuestionnaireResponseController,
	aiConfigController *ai_configs.AIConfigController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Global per-IP limit using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/reports", func(r chi.Router) {
				attachReportRouter(r, internalConfig, middlewares, reportController)
			})

			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRouter(r, middlewares, questionnaireController)
			})

			r.Route("/questionnaire-responses", func(r chi.Router) {
				attachQuestionnaireResponseRouter(r, middlewares, questionnaireResponseController)
			})

			r.Route("/ai-configs", func(r chi.Router) {
				attachAIConfigRouter(r, middlewares, aiConfigController)
			})
		})
	})
}
