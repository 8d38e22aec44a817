package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// RawReadingDTO is the record produced by the image reader for one sheet.
// AnswerKeyID and ParticipantID use the reader's convention: -1 (or 0) means
// the value could not be identified.
type RawReadingDTO struct {
	SourceFile    string `json:"source_file" binding:"required,max=255"`
	StatusCode    *int   `json:"status_code" binding:"required,min=0,max=3"`
	AnswerKeyID   int64  `json:"answer_key_id"`
	ParticipantID int64  `json:"participant_id"`
	Answers       string `json:"answers" binding:"max=255"`
}

type RawReadingBatchDTO struct {
	Readings []RawReadingDTO `json:"readings" binding:"required,min=1,dive"`
}

// OptionalID is a patch field that tells "absent" apart from an explicit null.
// Zero and negative ids follow the reader's convention for "not identified"
// and decode like null.
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v <= 0 {
		o.Value = nil
		return nil
	}
	id := uint(v)
	o.Value = &id
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// SetID returns a present OptionalID holding id.
func SetID(id uint) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

// LeituraPatchDTO corrects a leitura. Scores are never accepted from clients;
// they are recomputed from the patched answers and answer key.
type LeituraPatchDTO struct {
	AnswerKeyID   OptionalID `json:"answer_key_id"`
	ParticipantID OptionalID `json:"participant_id"`
	Answers       *string    `json:"answers"`
}

// Empty reports whether the patch supplies no field at all.
func (p LeituraPatchDTO) Empty() bool {
	return !p.AnswerKeyID.Set && !p.ParticipantID.Set && p.Answers == nil
}

type ParticipantSummaryDTO struct {
	ID     uint   `json:"id,omitempty"`
	Name   string `json:"name"`
	School string `json:"school"`
}

type AnswerKeySummaryDTO struct {
	ID                uint    `json:"id"`
	Answers           string  `json:"answers"`
	WeightPerQuestion float64 `json:"weight_per_question"`
}

// LeituraResponseDTO is a persisted leitura as shown to its account.
// NominalParticipant carries the original identity when the reading was
// attributed across accounts; it is informational only.
type LeituraResponseDTO struct {
	ID                 uint                   `json:"id"`
	SourceFile         string                 `json:"source_file"`
	StatusCode         int                    `json:"status_code"`
	Warning            string                 `json:"warning,omitempty"`
	AnswerKeyID        *uint                  `json:"answer_key_id"`
	ParticipantID      *uint                  `json:"participant_id"`
	SubmittedAnswers   string                 `json:"submitted_answers"`
	CorrectCount       int                    `json:"correct_count"`
	Score              float64                `json:"score"`
	CreatingAccountID  uint                   `json:"creating_account_id"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	ParticipantInfo    *ParticipantSummaryDTO `json:"participant,omitempty"`
	AnswerKeyInfo      *AnswerKeySummaryDTO   `json:"answer_key,omitempty"`
	NominalParticipant *ParticipantSummaryDTO `json:"nominal_participant,omitempty"`
}

// BatchItemResultDTO is the outcome of one reading inside a batch.
type BatchItemResultDTO struct {
	SourceFile string              `json:"source_file"`
	Leitura    *LeituraResponseDTO `json:"leitura,omitempty"`
	Error      string              `json:"error,omitempty"`
}

type BatchResultDTO struct {
	Total     int                  `json:"total"`
	Processed int                  `json:"processed"`
	Failed    int                  `json:"failed"`
	Results   []BatchItemResultDTO `json:"results"`
}

type LeituraStatsDTO struct {
	Total                int64    `json:"total"`
	Successful           int64    `json:"successful"`
	Failed               int64    `json:"failed"`
	SuccessRate          float64  `json:"success_rate"`
	AverageScore         float64  `json:"average_score"`
	MaxScore             float64  `json:"max_score"`
	MinScore             float64  `json:"min_score"`
	UniqueParticipants   int64    `json:"unique_participants"`
	DistinctAnswerKeys   int64    `json:"distinct_answer_keys"`
	BestAnswerKeyID      *uint    `json:"best_answer_key_id,omitempty"`
	BestAnswerKeyAverage *float64 `json:"best_answer_key_average,omitempty"`
}
