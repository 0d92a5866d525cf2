package constvars

// Client-facing messages. Kept generic so internals never leak.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientQuestionnaireNotFound         = "Questionnaire not found"
	ErrClientResponseNotFound              = "Questionnaire response not found"
	ErrClientReportNotFound                = "Report not found"
	ErrClientAIConfigNotFound              = "AI configuration not found"
	ErrClientResponseAlreadyCompleted      = "This questionnaire response is already completed and can no longer be modified"
	ErrClientReportQuotaExceeded           = "You have reached your report generation quota, please try again later"
	ErrClientModelUnavailable              = "The analysis service is temporarily unavailable, please try again later"
	ErrClientModelOutputUnusable           = "The analysis service returned an unusable result, please try again"
)

// Developer-facing messages logged alongside the caller location.
const (
	ErrDevValidationFailed           = "Validation failed for the request payload"
	ErrDevURLParamValidationFailed   = "Failed to validate URL parameter: %s"
	ErrDevCannotParseJSON            = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded     = "Request processing exceeded the server deadline"
	ErrDevServerProcess              = "Unexpected failure while processing the request"
	ErrDevAuthTokenMissing           = "Authorization token is missing from the request"
	ErrDevAuthTokenInvalidOrExpired  = "Authorization token is invalid or expired"
	ErrDevAuthInvalidSession         = "Session not found or no longer valid"
	ErrDevAPIKeyInvalid              = "Provided admin API key does not match"
	ErrDevGenerateMissingIdentifiers = "questionnaire_id and user_id are both required"

	ErrDevDBFailedToFindDocument     = "MongoDB: failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB: failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB: failed to iterate documents"
	ErrDevDBStringNotObjectID        = "MongoDB: provided string is not a valid ObjectID"

	ErrDevRedisGetData       = "Redis: failed to get data"
	ErrDevRedisSetData       = "Redis: failed to set data"
	ErrDevRedisDeleteData    = "Redis: failed to delete data"
	ErrDevRedisIncrementData = "Redis: failed to increment value"

	ErrDevMinioFailedToCreateObject = "Minio: failed to create object in bucket %s"

	ErrDevRabbitMQPublishMessage = "RabbitMQ: failed to publish message to queue %s"

	ErrDevCreateHTTPRequest = "Failed to build HTTP request to external service"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request to external service"

	ErrDevModelTransportFailure = "Chat completion request failed at transport level"
	ErrDevModelBadStatus        = "Chat completion endpoint returned status %d"
	ErrDevModelEmptyChoices     = "Chat completion response contained no choices"
	ErrDevModelContentNotJSON   = "Chat completion content is not valid report JSON"

	ErrDevQuestionnaireNotFound = "No questionnaire configuration found for the request"
	ErrDevResponseNotFound      = "No questionnaire response found for the given questionnaire and user"
	ErrDevReportNotFound        = "No report found for the given identifier"
	ErrDevAIConfigNotFound      = "No AI configuration row exists yet"
	ErrDevReportQuotaExceeded   = "Report generation quota exceeded for user"
	ErrDevResponseFrozen        = "Attempted to modify a completed questionnaire response"
)
