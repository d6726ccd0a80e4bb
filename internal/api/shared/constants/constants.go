package constants

const (
	MAX_PAGE_SIZE          = 100
	DEFAULT_OFFSET         = uint64(0)
	DEFAULT_CHANGES_LIMIT  = 20
	STATUS_SUCCESS         = "success"
	STATUS_HEALTHY         = "healthy"
	STATUS_READY           = "ready"
	MSG_NO_JSON_DATA       = "No JSON data provided"
	MSG_PHONE_REQUIRED     = "Phone number is required"
	MSG_INVALID_PAYLOAD    = "Invalid webhook payload"
	MSG_NOT_FOUND          = "Assignment not found"
	MSG_INTERNAL_ERROR     = "Internal server error"
	MSG_DATABASE_NOT_READY = "Database unavailable"
)
