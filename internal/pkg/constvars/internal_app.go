package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         contextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           contextKey = "session_id"
)

const (
	RedisSessionKeyPrefix = "session:"
	RedisDraftKeyPrefix   = "draft:"
)

const (
	// Stage field identifiers used by the booking field-change reducer.
	FieldFullName         = "fullName"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldConsultationType = "consultationType"
	FieldSpecialty        = "specialty"
	FieldDoctor           = "doctor"
	FieldDate             = "date"
	FieldTime             = "time"
	FieldReason           = "reason"
)

const (
	DateLayoutISO = "2006-01-02"
)

const (
	ReferralObjectPrefix = "referrals/"
)
