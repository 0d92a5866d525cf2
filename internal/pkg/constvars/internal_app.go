package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_USER_ID_KEY      contextKey = "session_user_id"
	CONTEXT_ADMIN_API_KEY_AUTH       contextKey = "admin_api_key_auth"
)

const (
	MongoCollectionQuestionnaires         = "questionnaires"
	MongoCollectionQuestionnaireResponses = "questionnaire_responses"
	MongoCollectionAIConfigs              = "ai_configs"
	MongoCollectionReports                = "reports"
)

const (
	RedisKeyLatestAIConfig        = "AICONFIG:LATEST"
	RedisKeyReportQuotaFormat     = "REPORT:QUOTA:%s:%s" // REPORT:QUOTA:<YYYYMM>:<user_id>
	RedisKeySessionPrefix         = "SESSION:"
	RedisLatestAIConfigTTLMinutes = 5
)

const (
	ResponseStatusDraft     = "draft"
	ResponseStatusCompleted = "completed"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeDropdown       = "dropdown"
	QuestionTypeScale          = "scale"
)

const (
	SectionTypeText     = "text"
	SectionTypeBarChart = "bar-chart"
	SectionTypePieChart = "pie-chart"
)

const (
	ScaleDefaultMin = 1
	ScaleDefaultMax = 5
)
