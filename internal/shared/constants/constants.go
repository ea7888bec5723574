package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderCSRFToken     = "X-CSRF-Token"
	HeaderStripeSig     = "Stripe-Signature"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyIsPaid    = "is_paid"
	ContextKeyIsAdmin   = "is_admin"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers           = "users"
	TableProfiles        = "profiles"
	TableSubscriptions   = "subscriptions"
	TableGenerationUsage = "generation_usage"
	TableReconcileJobs   = "reconcile_jobs"
	TableFeedback        = "feedback"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
