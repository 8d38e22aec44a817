package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lshigami/Gabarito/internal/model"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ScoreResult is the outcome of comparing one answer string with a key.
type ScoreResult struct {
	CorrectCount int
	Score        float64
}

type ScoringService interface {
	// Score grades answers against the referenced key. A nil key means the
	// sheet's exam could not be identified and scores zero without a lookup.
	Score(ctx context.Context, answerKeyID *uint, answers string) (ScoreResult, error)
}

type scoringService struct {
	answerKeyRepo repository.AnswerKeyRepository
}

func NewScoringService(answerKeyRepo repository.AnswerKeyRepository) ScoringService {
	return &scoringService{answerKeyRepo: answerKeyRepo}
}

func (s *scoringService) Score(ctx context.Context, answerKeyID *uint, answers string) (ScoreResult, error) {
	if answerKeyID == nil {
		return ScoreResult{}, nil
	}
	key, err := s.answerKeyRepo.FindByID(ctx, *answerKeyID)
	if err != nil {
		if isNotFound(err) {
			return ScoreResult{}, fmt.Errorf("%w: id %d", ErrAnswerKeyNotFound, *answerKeyID)
		}
		log.Error().Err(err).Uint("answerKeyID", *answerKeyID).Msg("Score: failed to load answer key")
		return ScoreResult{}, fmt.Errorf("loading answer key %d: %w", *answerKeyID, err)
	}
	return GradeAnswers(*key, answers), nil
}

// GradeAnswers compares answers with the key position by position, up to the
// shorter of the two. Only a valid choice (a-e, any case) equal to the key
// counts; blank and ambiguous marks never do.
func GradeAnswers(key model.AnswerKey, answers string) ScoreResult {
	n := min(len(key.Answers), len(answers))
	correct := 0
	for i := 0; i < n; i++ {
		submitted := lower(answers[i])
		if isChoice(submitted) && submitted == lower(key.Answers[i]) {
			correct++
		}
	}

	points, _ := decimal.NewFromInt(int64(correct)).
		Mul(decimal.NewFromFloat(key.WeightPerQuestion)).
		Round(2).
		Float64()
	return ScoreResult{CorrectCount: correct, Score: points}
}

// Sentinel marks the reader writes for blank or ambiguous bubbles.
const sentinelMarks = "0X?-"

func isChoice(c byte) bool {
	return c >= 'a' && c <= 'e'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ValidAnswerString reports whether s holds only choices and sentinel marks.
func ValidAnswerString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isChoice(lower(s[i])) && !strings.ContainsRune(sentinelMarks, rune(s[i])) {
			return false
		}
	}
	return true
}

// ASCIIOnly reports whether s holds single-byte characters only, so answer
// positions line up byte for byte with the key.
func ASCIIOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ValidKeyString reports whether s is a non-empty string of choices only.
func ValidKeyString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isChoice(lower(s[i])) {
			return false
		}
	}
	return true
}

// MaxScore is the score of a fully correct sheet.
func MaxScore(key model.AnswerKey) float64 {
	points, _ := decimal.NewFromInt(int64(len(key.Answers))).
		Mul(decimal.NewFromFloat(key.WeightPerQuestion)).
		Round(2).
		Float64()
	return points
}
