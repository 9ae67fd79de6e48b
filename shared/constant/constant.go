package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	RequestParamID        = "id"
	RequestParamServiceID = "serviceID"
	RequestQueryServiceID = "service_id"
	RequestQueryDate      = "date"
)

const (
	FieldCreatedAt = "created_at"
	FieldCreatedBy = "created_by"
)

const (
	// DateFormat is the calendar-date form used at every API boundary.
	// Dates are business-local wall-clock values, no timezone conversion.
	DateFormat = "2006-01-02"
	// ClockFormat is the HH:MM form used for slot and schedule times.
	ClockFormat = "15:04"
	// TimestampFormat is used for record metadata only.
	TimestampFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelCollectionAttributeKey = "docstore.collection"
	OtelDocumentAttributeKey   = "docstore.document"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
