package dto

import "time"

// AnswerKeyCreateDTO is for admins to register an answer key.
// ID is optional; when set the key keeps the exam number printed on the sheets.
type AnswerKeyCreateDTO struct {
	ID                *uint    `json:"id"`
	Answers           string   `json:"answers" binding:"required"`
	WeightPerQuestion *float64 `json:"weight_per_question" binding:"omitempty,gt=0,lte=999.99"`
}

// AnswerKeyUpsertDTO replaces the answers and weight of the key in the path.
type AnswerKeyUpsertDTO struct {
	Answers           string   `json:"answers" binding:"required"`
	WeightPerQuestion *float64 `json:"weight_per_question" binding:"omitempty,gt=0,lte=999.99"`
}

type AnswerKeyResponseDTO struct {
	ID                uint      `json:"id"`
	Answers           string    `json:"answers"`
	QuestionCount     int       `json:"question_count"`
	WeightPerQuestion float64   `json:"weight_per_question"`
	MaxScore          float64   `json:"max_score"`
	CreatedAt         time.Time `json:"created_at"`
}
