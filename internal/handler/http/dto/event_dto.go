package dto

import (
	"github.com/mveu/events-api/internal/domain/entity"
)

// RegisterEventRequest is the payload for register/unregister calls.
type RegisterEventRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// BatchEventsRequest is the payload for batch event lookup.
type BatchEventsRequest struct {
	EventIDs []string `json:"eventIds"`
}

// MembershipResponse is the DTO for a user's membership list.
type MembershipResponse struct {
	EventID []string `json:"eventId"`
}

// RegistrationResponse is returned by register/unregister calls.
type RegistrationResponse struct {
	Message     string   `json:"message"`
	EventIDList []string `json:"eventIdList"`
}

// EventMutationResponse wraps an event mutation result with a message.
type EventMutationResponse struct {
	Message string       `json:"message"`
	Event   entity.Event `json:"event"`
}
