package routers

import (
	"simoly-service/internal/app/delivery/http/middlewares"
	questionnaireResponses "simoly-service/internal/app/services/core/questionnaire_responses"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireResponseRouter(router chi.Router, mw *middlewares.Middlewares, questionnaireResponseController *questionnaireResponses.QuestionnaireResponseController) {
	router.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Use(mw.Authentication)
		r.Post("/", questionnaireResponseController.SubmitResponse)
		r.Get("/{response_id}", questionnaireResponseController.FindResponseByID)
		r.Put("/{response_id}", questionnaireResponseController.UpdateResponse)
		r.Post("/{response_id}/complete", questionnaireResponseController.CompleteResponse)
	})
}
