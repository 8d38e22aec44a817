package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/model"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// MaxWeightPerQuestion is the largest weight a decimal(5,2) column holds.
const MaxWeightPerQuestion = 999.99

type AnswerKeyService interface {
	CreateAnswerKey(ctx context.Context, req dto.AnswerKeyCreateDTO) (*dto.AnswerKeyResponseDTO, error)
	UpsertAnswerKey(ctx context.Context, id uint, req dto.AnswerKeyUpsertDTO) (*dto.AnswerKeyResponseDTO, error)
	GetAnswerKey(ctx context.Context, id uint) (*dto.AnswerKeyResponseDTO, error)
	GetAllAnswerKeys(ctx context.Context) ([]dto.AnswerKeyResponseDTO, error)
}

type answerKeyService struct {
	answerKeyRepo repository.AnswerKeyRepository
	grading       config.Grading
}

func NewAnswerKeyService(answerKeyRepo repository.AnswerKeyRepository, cfg *config.Config) AnswerKeyService {
	return &answerKeyService{answerKeyRepo: answerKeyRepo, grading: cfg.Grading}
}

func (s *answerKeyService) build(answers string, weight *float64) (model.AnswerKey, error) {
	answers = strings.ToLower(strings.TrimSpace(answers))
	if !ValidKeyString(answers) {
		return model.AnswerKey{}, fmt.Errorf("%w: answers must contain only the choices a-e", ErrInvalidAnswerKey)
	}
	if s.grading.QuestionCount > 0 && len(answers) != s.grading.QuestionCount {
		return model.AnswerKey{}, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswerKey, s.grading.QuestionCount, len(answers))
	}
	key := model.AnswerKey{Answers: answers, WeightPerQuestion: s.grading.DefaultWeight}
	if weight != nil {
		// The column is decimal(5,2); round here so every driver stores and
		// scores the same value.
		rounded, _ := decimal.NewFromFloat(*weight).Round(2).Float64()
		if rounded <= 0 || rounded > MaxWeightPerQuestion {
			return model.AnswerKey{}, fmt.Errorf("%w: weight per question must be between 0.01 and %.2f", ErrInvalidAnswerKey, MaxWeightPerQuestion)
		}
		key.WeightPerQuestion = rounded
	}
	return key, nil
}

func (s *answerKeyService) CreateAnswerKey(ctx context.Context, req dto.AnswerKeyCreateDTO) (*dto.AnswerKeyResponseDTO, error) {
	key, err := s.build(req.Answers, req.WeightPerQuestion)
	if err != nil {
		return nil, err
	}
	if req.ID != nil {
		if *req.ID == 0 {
			return nil, fmt.Errorf("%w: id must be positive", ErrInvalidAnswerKey)
		}
		key.ID = *req.ID
	}

	if err := s.answerKeyRepo.Create(ctx, &key); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: id %d already exists", ErrInvalidAnswerKey, key.ID)
		}
		log.Error().Err(err).Msg("CreateAnswerKey: failed to create answer key")
		return nil, fmt.Errorf("database error creating answer key: %w", err)
	}
	log.Info().Uint("answerKeyID", key.ID).Int("questions", len(key.Answers)).Msg("Answer key created")
	return toAnswerKeyResponse(&key)
}

func (s *answerKeyService) UpsertAnswerKey(ctx context.Context, id uint, req dto.AnswerKeyUpsertDTO) (*dto.AnswerKeyResponseDTO, error) {
	key, err := s.build(req.Answers, req.WeightPerQuestion)
	if err != nil {
		return nil, err
	}
	key.ID = id

	if err := s.answerKeyRepo.Upsert(ctx, &key); err != nil {
		log.Error().Err(err).Uint("answerKeyID", id).Msg("UpsertAnswerKey: failed to save answer key")
		return nil, fmt.Errorf("database error saving answer key %d: %w", id, err)
	}

	saved, err := s.answerKeyRepo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint("answerKeyID", id).Msg("UpsertAnswerKey: failed to reload answer key")
		return toAnswerKeyResponse(&key)
	}
	return toAnswerKeyResponse(saved)
}

func (s *answerKeyService) GetAnswerKey(ctx context.Context, id uint) (*dto.AnswerKeyResponseDTO, error) {
	key, err := s.answerKeyRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrAnswerKeyNotFound, id)
		}
		return nil, fmt.Errorf("error fetching answer key %d: %w", id, err)
	}
	return toAnswerKeyResponse(key)
}

func (s *answerKeyService) GetAllAnswerKeys(ctx context.Context) ([]dto.AnswerKeyResponseDTO, error) {
	keys, err := s.answerKeyRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetAllAnswerKeys: failed to list answer keys")
		return nil, fmt.Errorf("error fetching answer keys: %w", err)
	}

	dtos := make([]dto.AnswerKeyResponseDTO, 0, len(keys))
	for i := range keys {
		resp, err := toAnswerKeyResponse(&keys[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func toAnswerKeyResponse(key *model.AnswerKey) (*dto.AnswerKeyResponseDTO, error) {
	var resp dto.AnswerKeyResponseDTO
	if err := copier.Copy(&resp, key); err != nil {
		log.Error().Err(err).Msg("Failed to copy AnswerKey model to AnswerKeyResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.QuestionCount = len(key.Answers)
	resp.MaxScore = MaxScore(*key)
	return &resp, nil
}
