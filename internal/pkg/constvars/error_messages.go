package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"datetime":     "must follow the %s format",
	"phone_digits": "must contain at least 10 digits",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please log in first"
	ErrClientMissingFields                 = "some required fields are missing or invalid"
	ErrClientDraftNotFound                 = "booking draft not found or expired"
	ErrClientDraftOutOfDate                = "the booking draft changed, please refresh and try again"
	ErrClientStageTransition               = "this step is not reachable from the current step"
	ErrClientSlotNoLongerAvailable         = "the selected time is no longer available, please pick another one"
	ErrClientClinicUnreachable             = "the clinic service is unreachable, please retry"
	ErrClientReferralTooLarge              = "referral document exceeds the maximum allowed size"
	ErrClientReferralBadFormat             = "referral document must be a PDF or an image"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "Validation failed"
	ErrDevInvalidRequestPayload  = "Invalid request payload"
	ErrDevCannotParseJSON        = "Failed to parse JSON input"
	ErrDevCannotMarshalJSON      = "Failed to marshal data into JSON"
	ErrDevCannotParseDate        = "Failed to parse date input"
	ErrDevServerDeadlineExceeded = "Deadline exceeded while processing request"
	ErrDevServerProcess          = "Failed to process the request"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevAuthTokenInvalidOrExpired = "Session token is invalid or expired"
	ErrDevAuthInvalidSession        = "Session not found in store"
	ErrDevMissingRequestID          = "Request ID not found in request context"
	ErrDevMissingSessionData        = "Session data not found in request context"

	ErrDevDraftNotFound        = "Booking draft not found in store: %s"
	ErrDevDraftRevisionStale   = "Draft revision is stale: got %d, want %d"
	ErrDevStageTransition      = "Stage transition not allowed: %s -> %s"
	ErrDevDoctorNotFound       = "Doctor not found in directory: %s"
	ErrDevSlotResolutionFailed = "No slot id found for doctor %s on %s at %s"
	ErrDevTimeNotOffered       = "Selected time %s is not among the available times"

	ErrDevRedisGetNoData     = "Failed to get data from redis with key: %s"
	ErrDevRedisSetData       = "Failed to set data to redis"
	ErrDevRedisGetData       = "Failed to get data from redis"
	ErrDevRedisDeleteData    = "Failed to delete data from redis"
	ErrDevRabbitMQPublish    = "Failed to publish message to queue: %s"
	ErrDevMinioCreateObject  = "Failed to create object in bucket: %s"
	ErrDevMinioPresignObject = "Failed to presign object in bucket: %s"

	ErrDevCreateHTTPRequest     = "Failed to create HTTP request"
	ErrDevSendHTTPRequest       = "Failed to send HTTP request"
	ErrDevClinicGetResource     = "Failed to get clinic resource: %s"
	ErrDevClinicCreateResource  = "Failed to create clinic resource: %s"
	ErrDevClinicDecodeResponse  = "Failed to decode clinic response for resource: %s"
	ErrDevClinicBackendRejected = "Clinic backend rejected the request: %s"
)
