package values

// Status strings returned in the response envelope and mapped to
// HTTP status codes by util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
	NoneAvailable  = "none-available"
)

const SystemErr = "Something went wrong. Please try again"

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-Id"
)

type contextKey string

const ContextTracingKey = contextKey("tracing-context")
