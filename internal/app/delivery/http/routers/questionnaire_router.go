package routers

import (
	"simoly-service/internal/app/delivery/http/middlewares"
	"simoly-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRouter(router chi.Router, mw *middlewares.Middlewares, questionnaireController *questionnaires.QuestionnaireController) {
	router.Get("/latest", questionnaireController.FindLatestQuestionnaire)
	router.Get("/{questionnaire_id}", questionnaireController.FindQuestionnaireByID)

	// Administration requires the superadmin API key.
	router.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Use(mw.RequireSuperadminAPIKey)
		r.Post("/", questionnaireController.CreateQuestionnaire)
		r.Put("/{questionnaire_id}", questionnaireController.UpdateQuestionnaire)
		r.Delete("/{questionnaire_id}", questionnaireController.DeleteQuestionnaireByID)
	})
}
