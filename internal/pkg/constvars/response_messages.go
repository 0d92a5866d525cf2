package constvars

const (
	CreateQuestionnaireSuccessMessage = "Successfully created questionnaire"
	UpdateQuestionnaireSuccessMessage = "Successfully updated questionnaire"
	FindQuestionnaireSuccessMessage   = "Successfully retrieved questionnaire"
	DeleteQuestionnaireSuccessMessage = "Successfully deleted questionnaire"

	CreateResponseSuccessMessage   = "Successfully saved questionnaire response"
	UpdateResponseSuccessMessage   = "Successfully updated questionnaire response"
	CompleteResponseSuccessMessage = "Successfully completed questionnaire response"
	FindResponseSuccessMessage     = "Successfully retrieved questionnaire response"

	CreateAIConfigSuccessMessage = "Successfully created AI configuration"
	FindAIConfigSuccessMessage   = "Successfully retrieved AI configuration"

	FindReportSuccessMessage  = "Successfully retrieved report"
	FindReportsSuccessMessage = "Successfully retrieved reports"

	ResponseUnknown = "unknown"
)
