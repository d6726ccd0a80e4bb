package domain

import "errors"

// ErrPhoneRequired is returned when an assignment is written without a phone number
var ErrPhoneRequired = errors.New("phone number is required")
