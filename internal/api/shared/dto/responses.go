package dto

import "github.com/feral-file/ff-assignment/internal/domain"

// ContactWebhookResponse represents the response for a processed contact webhook
type ContactWebhookResponse struct {
	Status     string                  `json:"status"`
	Action     domain.AssignmentAction `json:"action"`
	Assignment *AssignmentResponse     `json:"assignment"`
}

// AssignmentListResponse represents the list of all assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Count       int                  `json:"count"`
}

// AssignmentChangeListResponse represents a page of an assignment change journal
type AssignmentChangeListResponse struct {
	Changes []AssignmentChangeResponse `json:"changes"`
	Total   uint64                     `json:"total"`
}
