package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/model"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// LeituraService manages the lifecycle of reading records:
// created, corrected any number of times, deleted.
type LeituraService interface {
	Ingest(ctx context.Context, reading dto.RawReadingDTO, actor Actor) (*dto.LeituraResponseDTO, error)
	IngestBatch(ctx context.Context, readings []dto.RawReadingDTO, actor Actor) (*dto.BatchResultDTO, error)
	Correct(ctx context.Context, id uint, patch dto.LeituraPatchDTO, actor Actor) (*dto.LeituraResponseDTO, error)
	Delete(ctx context.Context, id uint, actor Actor) (*dto.LeituraResponseDTO, error)
	GetLeitura(ctx context.Context, id uint, actor Actor) (*dto.LeituraResponseDTO, error)
	GetLeituras(ctx context.Context, actor Actor) ([]dto.LeituraResponseDTO, error)
	GetStats(ctx context.Context, actor Actor) (*dto.LeituraStatsDTO, error)
}

type leituraService struct {
	leituraRepo      repository.LeituraRepository
	scoring          ScoringService
	reconciliation   ReconciliationService
	questionCount    int
	batchConcurrency int
}

func NewLeituraService(
	leituraRepo repository.LeituraRepository,
	scoring ScoringService,
	reconciliation ReconciliationService,
	cfg *config.Config,
) LeituraService {
	concurrency := cfg.Ingest.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &leituraService{
		leituraRepo:      leituraRepo,
		scoring:          scoring,
		reconciliation:   reconciliation,
		questionCount:    cfg.Grading.QuestionCount,
		batchConcurrency: concurrency,
	}
}

// ReaderRef converts an id in the reader's convention to an optional
// reference: zero and negative values mean "not identified".
func ReaderRef(id int64) *uint {
	if id <= 0 {
		return nil
	}
	ref := uint(id)
	return &ref
}

// Ingest persists one reader record. Non-clean statuses are still stored so
// operators can see failed sheets; a fatal read is stored unscored and
// unattributed.
func (s *leituraService) Ingest(ctx context.Context, reading dto.RawReadingDTO, actor Actor) (*dto.LeituraResponseDTO, error) {
	status := model.ReadOK
	if reading.StatusCode != nil {
		status = model.ReadStatus(*reading.StatusCode)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status code %d", ErrInvalidReading, status)
	}
	if !ASCIIOnly(reading.Answers) {
		return nil, fmt.Errorf("%w: answers must be ASCII", ErrInvalidReading)
	}

	leitura := model.Leitura{
		SourceFile:        reading.SourceFile,
		StatusCode:        status,
		SubmittedAnswers:  reading.Answers,
		CreatingAccountID: actor.AccountID,
	}

	var resolution Resolution
	if !status.IsFatal() {
		// Score before reconciling so a missing key rejects the reading
		// before any participant row is written.
		keyID := ReaderRef(reading.AnswerKeyID)
		result, err := s.scoring.Score(ctx, keyID, reading.Answers)
		if err != nil {
			log.Warn().Err(err).Str("sourceFile", reading.SourceFile).Msg("Ingest: scoring rejected reading")
			return nil, err
		}
		leitura.AnswerKeyID = keyID
		leitura.CorrectCount = result.CorrectCount
		leitura.Score = result.Score

		resolution, err = s.reconciliation.Resolve(ctx, ReaderRef(reading.ParticipantID), actor.AccountID)
		if err != nil {
			log.Error().Err(err).Str("sourceFile", reading.SourceFile).Msg("Ingest: participant reconciliation failed")
			return nil, err
		}
		leitura.ParticipantID = resolution.ParticipantID
	}

	if err := s.leituraRepo.Create(ctx, &leitura); err != nil {
		event := log.Error().Err(err).Str("sourceFile", reading.SourceFile).Uint("accountID", actor.AccountID)
		if resolution.Created && resolution.ParticipantID != nil {
			event = event.Uint("orphanParticipantID", *resolution.ParticipantID)
		}
		event.Msg("Ingest: failed to persist leitura")
		return nil, fmt.Errorf("database error creating leitura: %w", err)
	}

	log.Info().
		Uint("leituraID", leitura.ID).
		Int("status", int(status)).
		Int("correct", leitura.CorrectCount).
		Float64("score", leitura.Score).
		Msg("Leitura ingested")

	resp, err := s.detailedResponse(ctx, actor, &leitura)
	if err != nil {
		return nil, err
	}
	if resolution.Reconciled && resolution.Nominal != nil {
		resp.NominalParticipant = &dto.ParticipantSummaryDTO{
			Name:   resolution.Nominal.Name,
			School: resolution.Nominal.School,
		}
	}
	return resp, nil
}

// IngestBatch ingests every reading, bounded by the configured concurrency.
// A failing reading is reported in its slot and never aborts the others.
func (s *leituraService) IngestBatch(ctx context.Context, readings []dto.RawReadingDTO, actor Actor) (*dto.BatchResultDTO, error) {
	results := make([]dto.BatchItemResultDTO, len(readings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	var mu sync.Mutex
	failed := 0

	for i := range readings {
		i := i
		g.Go(func() error {
			reading := readings[i]
			results[i].SourceFile = reading.SourceFile
			resp, err := s.Ingest(gctx, reading, actor)
			if err != nil {
				log.Warn().Err(err).Str("sourceFile", reading.SourceFile).Msg("IngestBatch: reading failed")
				results[i].Error = err.Error()
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			results[i].Leitura = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.BatchResultDTO{
		Total:     len(readings),
		Processed: len(readings) - failed,
		Failed:    failed,
		Results:   results,
	}, nil
}

// Correct applies an operator's patch and recomputes the score from the
// resulting answers and key. Fields absent from the patch keep their value.
func (s *leituraService) Correct(ctx context.Context, id uint, patch dto.LeituraPatchDTO, actor Actor) (*dto.LeituraResponseDTO, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}
	if patch.Answers != nil {
		if err := s.validateAnswers(*patch.Answers); err != nil {
			return nil, err
		}
	}

	leitura, err := s.leituraRepo.FindByID(ctx, actor.scope(), id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrLeituraNotFound, id)
		}
		return nil, fmt.Errorf("error fetching leitura %d: %w", id, err)
	}

	if patch.AnswerKeyID.Set {
		leitura.AnswerKeyID = patch.AnswerKeyID.Value
	}
	if patch.Answers != nil {
		leitura.SubmittedAnswers = *patch.Answers
	}

	// Also validates a newly referenced key before anything is written.
	result, err := s.scoring.Score(ctx, leitura.AnswerKeyID, leitura.SubmittedAnswers)
	if err != nil {
		return nil, err
	}

	var resolution Resolution
	if patch.ParticipantID.Set {
		if patch.ParticipantID.Value == nil {
			leitura.ParticipantID = nil
		} else {
			resolution, err = s.reconciliation.Resolve(ctx, patch.ParticipantID.Value, actor.AccountID)
			if err != nil {
				return nil, err
			}
			if resolution.ParticipantID == nil {
				return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, *patch.ParticipantID.Value)
			}
			leitura.ParticipantID = resolution.ParticipantID
		}
	}

	previousCorrect, previousScore := leitura.CorrectCount, leitura.Score
	leitura.CorrectCount = result.CorrectCount
	leitura.Score = result.Score

	if err := s.leituraRepo.UpdateScoring(ctx, leitura); err != nil {
		if isNotFound(err) {
			log.Warn().Uint("leituraID", id).Msg("Correct: leitura deleted before the update was written")
			return nil, fmt.Errorf("%w: id %d", ErrLeituraNotFound, id)
		}
		log.Error().Err(err).Uint("leituraID", id).Msg("Correct: failed to update leitura")
		return nil, fmt.Errorf("database error updating leitura %d: %w", id, err)
	}
	log.Info().
		Uint("leituraID", id).
		Int("previousCorrect", previousCorrect).
		Int("correct", leitura.CorrectCount).
		Float64("previousScore", previousScore).
		Float64("score", leitura.Score).
		Msg("Leitura corrected")

	resp, err := s.detailedResponse(ctx, actor, leitura)
	if err != nil {
		return nil, err
	}
	if resolution.Reconciled && resolution.Nominal != nil {
		resp.NominalParticipant = &dto.ParticipantSummaryDTO{Name: resolution.Nominal.Name, School: resolution.Nominal.School}
	}
	return resp, nil
}

func (s *leituraService) validateAnswers(answers string) error {
	if !ValidAnswerString(answers) {
		return fmt.Errorf("%w: only a-e and the marks 0, X, ?, - are allowed", ErrMalformedAnswerString)
	}
	if s.questionCount > 0 && len(answers) != s.questionCount {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrMalformedAnswerString, s.questionCount, len(answers))
	}
	return nil
}

// Delete removes the leitura only; participants and answer keys are untouched.
func (s *leituraService) Delete(ctx context.Context, id uint, actor Actor) (*dto.LeituraResponseDTO, error) {
	deleted, err := s.leituraRepo.Delete(ctx, actor.scope(), id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrLeituraNotFound, id)
		}
		log.Error().Err(err).Uint("leituraID", id).Msg("Delete: failed to delete leitura")
		return nil, fmt.Errorf("database error deleting leitura %d: %w", id, err)
	}
	log.Info().Uint("leituraID", id).Uint("accountID", actor.AccountID).Msg("Leitura deleted")
	return toLeituraResponse(deleted)
}

func (s *leituraService) GetLeitura(ctx context.Context, id uint, actor Actor) (*dto.LeituraResponseDTO, error) {
	leitura, err := s.leituraRepo.FindByIDWithDetails(ctx, actor.scope(), id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrLeituraNotFound, id)
		}
		return nil, fmt.Errorf("error fetching leitura %d: %w", id, err)
	}
	return toLeituraResponse(leitura)
}

func (s *leituraService) GetLeituras(ctx context.Context, actor Actor) ([]dto.LeituraResponseDTO, error) {
	leituras, err := s.leituraRepo.FindAllWithDetails(ctx, actor.scope())
	if err != nil {
		log.Error().Err(err).Uint("accountID", actor.AccountID).Msg("GetLeituras: failed to list leituras")
		return nil, fmt.Errorf("error fetching leituras: %w", err)
	}

	dtos := make([]dto.LeituraResponseDTO, 0, len(leituras))
	for i := range leituras {
		resp, err := toLeituraResponse(&leituras[i])
		if err != nil {
			log.Error().Err(err).Uint("leituraID", leituras[i].ID).Msg("GetLeituras: skipping leitura that could not be mapped")
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *leituraService) GetStats(ctx context.Context, actor Actor) (*dto.LeituraStatsDTO, error) {
	stats, err := s.leituraRepo.Stats(ctx, actor.scope())
	if err != nil {
		log.Error().Err(err).Uint("accountID", actor.AccountID).Msg("GetStats: failed to aggregate leituras")
		return nil, fmt.Errorf("error computing statistics: %w", err)
	}

	var resp dto.LeituraStatsDTO
	if err := copier.Copy(&resp, stats); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.AverageScore = round2(stats.AverageScore)
	if stats.Total > 0 {
		resp.SuccessRate = round2(float64(stats.Successful) / float64(stats.Total) * 100)
	}

	best, err := s.leituraRepo.BestAnswerKey(ctx, actor.scope())
	if err != nil {
		log.Warn().Err(err).Msg("GetStats: failed to rank answer keys")
	} else if best != nil {
		avg := round2(best.AverageScore)
		resp.BestAnswerKeyID = &best.AnswerKeyID
		resp.BestAnswerKeyAverage = &avg
	}
	return &resp, nil
}

// detailedResponse reloads the leitura with its key and participant. A failed
// reload falls back to the in-memory record.
func (s *leituraService) detailedResponse(ctx context.Context, actor Actor, leitura *model.Leitura) (*dto.LeituraResponseDTO, error) {
	// The creator may lose sight of a leitura attributed to a legacy participant, so reload unscoped.
	detailed, err := s.leituraRepo.FindByIDWithDetails(ctx, repository.Scope{AccountID: actor.AccountID, All: true}, leitura.ID)
	if err != nil {
		log.Warn().Err(err).Uint("leituraID", leitura.ID).Msg("Failed to reload leitura with details, responding from current state")
		return toLeituraResponse(leitura)
	}
	return toLeituraResponse(detailed)
}

func toLeituraResponse(leitura *model.Leitura) (*dto.LeituraResponseDTO, error) {
	var resp dto.LeituraResponseDTO
	if err := copier.Copy(&resp, leitura); err != nil {
		log.Error().Err(err).Msg("Failed to copy Leitura model to LeituraResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.StatusCode = int(leitura.StatusCode)
	resp.Warning = leitura.StatusCode.Warning()
	if leitura.Participant != nil {
		resp.ParticipantInfo = &dto.ParticipantSummaryDTO{
			ID:     leitura.Participant.ID,
			Name:   leitura.Participant.Name,
			School: leitura.Participant.School,
		}
	}
	if leitura.AnswerKey != nil {
		resp.AnswerKeyInfo = &dto.AnswerKeySummaryDTO{
			ID:                leitura.AnswerKey.ID,
			Answers:           leitura.AnswerKey.Answers,
			WeightPerQuestion: leitura.AnswerKey.WeightPerQuestion,
		}
	}
	return &resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
