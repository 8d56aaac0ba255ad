package tracing

// Context carries the per-request identifiers threaded through handlers
// and logs. Populated by the RequestTracing middleware.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
