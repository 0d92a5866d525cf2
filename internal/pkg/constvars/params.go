package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamResponseID      = "response_id"
	URLParamReportID        = "report_id"

	QueryParamUserID = "user_id"
)
