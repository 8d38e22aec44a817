package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/model"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/rs/zerolog/log"
)

type ParticipantService interface {
	RegisterParticipant(ctx context.Context, req dto.ParticipantCreateDTO, actor Actor) (*dto.ParticipantResponseDTO, error)
	GetParticipant(ctx context.Context, id uint, actor Actor) (*dto.ParticipantResponseDTO, error)
	GetOwnParticipants(ctx context.Context, actor Actor) ([]dto.ParticipantResponseDTO, error)
}

type participantService struct {
	participantRepo repository.ParticipantRepository
}

func NewParticipantService(participantRepo repository.ParticipantRepository) ParticipantService {
	return &participantService{participantRepo: participantRepo}
}

func (s *participantService) RegisterParticipant(ctx context.Context, req dto.ParticipantCreateDTO, actor Actor) (*dto.ParticipantResponseDTO, error) {
	owner := actor.AccountID
	participant := model.Participant{
		Name:           strings.TrimSpace(req.Name),
		School:         strings.TrimSpace(req.School),
		OwnerAccountID: &owner,
	}
	if participant.Name == "" || participant.School == "" {
		return nil, fmt.Errorf("%w: name and school are required", ErrInvalidParticipant)
	}
	if err := s.participantRepo.Create(ctx, &participant); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s / %s", ErrDuplicateParticipant, participant.Name, participant.School)
		}
		log.Error().Err(err).Uint("accountID", owner).Msg("RegisterParticipant: failed to create participant")
		return nil, fmt.Errorf("database error creating participant: %w", err)
	}
	return toParticipantResponse(&participant)
}

func (s *participantService) GetParticipant(ctx context.Context, id uint, actor Actor) (*dto.ParticipantResponseDTO, error) {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, id)
		}
		return nil, fmt.Errorf("error fetching participant %d: %w", id, err)
	}
	// Other accounts' rows are reported as missing rather than forbidden.
	if !actor.Admin && !participant.OwnedBy(actor.AccountID) {
		return nil, fmt.Errorf("%w: id %d", ErrParticipantNotFound, id)
	}
	return toParticipantResponse(participant)
}

func (s *participantService) GetOwnParticipants(ctx context.Context, actor Actor) ([]dto.ParticipantResponseDTO, error) {
	participants, err := s.participantRepo.FindAllByOwner(ctx, actor.AccountID)
	if err != nil {
		log.Error().Err(err).Uint("accountID", actor.AccountID).Msg("GetOwnParticipants: failed to list participants")
		return nil, fmt.Errorf("error fetching participants: %w", err)
	}
	dtos := make([]dto.ParticipantResponseDTO, 0, len(participants))
	if err := copier.Copy(&dtos, &participants); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return dtos, nil
}

func toParticipantResponse(participant *model.Participant) (*dto.ParticipantResponseDTO, error) {
	var resp dto.ParticipantResponseDTO
	if err := copier.Copy(&resp, participant); err != nil {
		log.Error().Err(err).Msg("Failed to copy Participant model to ParticipantResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
