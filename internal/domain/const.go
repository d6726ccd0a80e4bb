package domain

const (
	// Phone constants
	PHONE_PREFIX = "+"

	// Event type used when a webhook omits event_type
	UNKNOWN_EVENT_TYPE = "unknown"
)
