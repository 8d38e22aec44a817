package model

import "time"

// Participant is a person who sits an exam. Each row belongs to exactly one
// account; OwnerAccountID is nil only for legacy rows.
type Participant struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_participant_identity;index"`
	School         string    `json:"school" gorm:"type:varchar(255);not null;uniqueIndex:idx_participant_identity"`
	OwnerAccountID *uint     `json:"owner_account_id,omitempty" gorm:"uniqueIndex:idx_participant_identity;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OwnedBy reports whether accountID owns the row. Legacy rows are owned by no one.
func (p *Participant) OwnedBy(accountID uint) bool {
	return p.OwnerAccountID != nil && *p.OwnerAccountID == accountID
}
