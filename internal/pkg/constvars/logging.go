package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingDraftIDKey        = "draft_id"
	LoggingStageKey          = "stage"
	LoggingFieldKey          = "field"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingDateKey           = "date"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResponseLengthKey = "response_length"
)
