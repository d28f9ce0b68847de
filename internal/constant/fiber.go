package constant

const (
	ContextKeyRequestID = "requestid"
	ContextKeyOrgID     = "orgId"

	// OrgHeader carries the caller's organization slug, resolved and verified
	// by the upstream gateway before the request reaches this service.
	OrgHeader = "X-Marquee-Org"

	RequestIDHeader = "X-Marquee-Request-ID"
)
