package model

import "time"

// AnswerKey is the canonical answer string of one exam ("prova").
type AnswerKey struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Answers           string    `json:"answers" gorm:"type:varchar(255);not null"` // lowercase, one char per question
	WeightPerQuestion float64   `json:"weight_per_question" gorm:"type:decimal(5,2);not null;default:0.50"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
