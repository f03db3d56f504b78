package i18n

// Message keys used across handlers and middleware.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"

	ErrKeyInvalidLabel      = "error.invalid_label"
	ErrKeyLabelNotFound     = "error.label_not_found"
	ErrKeyInvalidCategory   = "error.invalid_category"
	ErrKeySerialCapacity    = "error.serial_capacity"
	ErrKeyInvalidTransition = "error.invalid_transition"
	ErrKeyValidationCount   = "error.validation.count"

	MsgKeyBatchGenerated = "success.batch_generated"
)
