package dto

import (
	"github.com/feral-file/ff-assignment/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-assignment/internal/api/shared/errors"
)

// ContactWebhookRequest represents the body of a contact assignment webhook.
// Fields other than these are ignored.
type ContactWebhookRequest struct {
	EventType *string         `json:"event_type"`
	Contact   *ContactPayload `json:"contact"`
}

// ContactPayload represents the contact object of the webhook
type ContactPayload struct {
	Phone    string           `json:"phone"`
	Assignee *AssigneePayload `json:"assignee"`
}

// AssigneePayload represents the staff member the contact is assigned to
type AssigneePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Phone returns the contact phone, empty when the contact object is missing
func (r *ContactWebhookRequest) Phone() string {
	if r.Contact == nil {
		return ""
	}
	return r.Contact.Phone
}

// AssigneeName returns the assignee first and last name, each defaulting to empty
func (r *ContactWebhookRequest) AssigneeName() (string, string) {
	if r.Contact == nil || r.Contact.Assignee == nil {
		return "", ""
	}
	return r.Contact.Assignee.FirstName, r.Contact.Assignee.LastName
}

// Validate validates the request body
func (r *ContactWebhookRequest) Validate() error {
	if r.Phone() == "" {
		return apierrors.NewBadRequestError(constants.MSG_PHONE_REQUIRED)
	}
	return nil
}
