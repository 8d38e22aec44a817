package dto

import "time"

// ParticipantCreateDTO registers a participant owned by the calling account.
type ParticipantCreateDTO struct {
	Name   string `json:"name" binding:"required,max=255"`
	School string `json:"school" binding:"required,max=255"`
}

type ParticipantResponseDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	School         string    `json:"school"`
	OwnerAccountID *uint     `json:"owner_account_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
