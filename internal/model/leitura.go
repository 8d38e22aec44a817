package model

import "time"

// ReadStatus is the outcome code reported by the image reader.
type ReadStatus int

const (
	ReadOK             ReadStatus = 0
	ReadCodeUnreadable ReadStatus = 1 // marker/code could not be decoded
	ReadImprecise      ReadStatus = 2 // answer area located imprecisely
	ReadFatal          ReadStatus = 3
)

func (s ReadStatus) Valid() bool {
	return s >= ReadOK && s <= ReadFatal
}

func (s ReadStatus) IsFatal() bool {
	return s == ReadFatal
}

// Warning returns the operator-facing message for a non-clean read.
func (s ReadStatus) Warning() string {
	switch s {
	case ReadCodeUnreadable:
		return "marker code could not be read"
	case ReadImprecise:
		return "answer area was identified imprecisely"
	case ReadFatal:
		return "fatal error while reading the sheet"
	default:
		return ""
	}
}

// Leitura is one persisted reading of an answer sheet.
type Leitura struct {
	ID                uint         `gorm:"primarykey" json:"id"`
	SourceFile        string       `json:"source_file" gorm:"type:varchar(255);not null"`
	StatusCode        ReadStatus   `json:"status_code" gorm:"not null;index"`
	AnswerKeyID       *uint        `json:"answer_key_id,omitempty" gorm:"index"`
	AnswerKey         *AnswerKey   `json:"answer_key,omitempty" gorm:"foreignKey:AnswerKeyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ParticipantID     *uint        `json:"participant_id,omitempty" gorm:"index"`
	Participant       *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	SubmittedAnswers  string       `json:"submitted_answers" gorm:"type:varchar(255);not null;default:''"`
	CorrectCount      int          `json:"correct_count" gorm:"not null;default:0"`
	Score             float64      `json:"score" gorm:"type:decimal(7,2);not null;default:0"`
	CreatingAccountID uint         `json:"creating_account_id" gorm:"not null;index"`
	CreatedAt         time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
