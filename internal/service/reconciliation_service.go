package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Gabarito/internal/model"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/rs/zerolog/log"
)

// Resolution says which participant a new leitura should reference.
type Resolution struct {
	ParticipantID *uint
	// Nominal is the participant named by the reader, set when it was found.
	Nominal *model.Participant
	// Reconciled is true when Nominal belongs to another account and
	// ParticipantID points at the acting account's own copy.
	Reconciled bool
	// Created is true when that copy was inserted by this call.
	Created bool
}

type ReconciliationService interface {
	// Resolve maps the reader's nominal participant onto a participant owned
	// by actingAccountID, copying name and school into a new row when the
	// nominal one belongs to someone else. It never hands out another
	// account's row.
	Resolve(ctx context.Context, nominalID *uint, actingAccountID uint) (Resolution, error)
}

type reconciliationService struct {
	participantRepo repository.ParticipantRepository
}

func NewReconciliationService(participantRepo repository.ParticipantRepository) ReconciliationService {
	return &reconciliationService{participantRepo: participantRepo}
}

func (s *reconciliationService) Resolve(ctx context.Context, nominalID *uint, actingAccountID uint) (Resolution, error) {
	if nominalID == nil {
		return Resolution{}, nil
	}

	nominal, err := s.participantRepo.FindByID(ctx, *nominalID)
	if err != nil {
		if isNotFound(err) {
			log.Info().Uint("participantID", *nominalID).Msg("Resolve: nominal participant does not exist, leaving reading unattributed")
			return Resolution{}, nil
		}
		return Resolution{}, fmt.Errorf("loading participant %d: %w", *nominalID, err)
	}

	if nominal.OwnedBy(actingAccountID) {
		return Resolution{ParticipantID: &nominal.ID, Nominal: nominal}, nil
	}

	owned, created, err := s.findOrCreateOwned(ctx, nominal, actingAccountID)
	if err != nil {
		return Resolution{}, err
	}
	log.Info().
		Uint("nominalID", nominal.ID).
		Uint("ownedID", owned.ID).
		Uint("accountID", actingAccountID).
		Bool("created", created).
		Msg("Resolve: reading attributed across accounts")
	return Resolution{ParticipantID: &owned.ID, Nominal: nominal, Reconciled: true, Created: created}, nil
}

// findOrCreateOwned returns the acting account's row for the nominal identity.
// The insert is conflict-safe: losing the race to a concurrent writer falls
// back to reading the winner's row, and the whole sequence is retried once
// before giving up.
func (s *reconciliationService) findOrCreateOwned(ctx context.Context, nominal *model.Participant, ownerID uint) (*model.Participant, bool, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := s.participantRepo.FindByIdentity(ctx, nominal.Name, nominal.School, ownerID)
		if err == nil {
			return existing, false, nil
		}
		if !isNotFound(err) {
			return nil, false, fmt.Errorf("looking up owned participant: %w", err)
		}

		shadow := &model.Participant{Name: nominal.Name, School: nominal.School, OwnerAccountID: &ownerID}
		inserted, err := s.participantRepo.CreateIfAbsent(ctx, shadow)
		if err != nil && !isUniqueViolation(err) {
			return nil, false, fmt.Errorf("creating owned participant: %w", err)
		}
		if err == nil && inserted {
			return shadow, true, nil
		}

		// Someone else inserted the identity between our read and write.
		winner, err := s.participantRepo.FindByIdentity(ctx, nominal.Name, nominal.School, ownerID)
		if err == nil {
			return winner, false, nil
		}
		lastErr = err
		log.Warn().Err(err).
			Str("name", nominal.Name).
			Str("school", nominal.School).
			Uint("accountID", ownerID).
			Int("attempt", attempt+1).
			Msg("findOrCreateOwned: conflicting row not readable after insert conflict")
	}
	return nil, false, fmt.Errorf("%w: %s / %s for account %d: %v", ErrReconciliationRaceLost, nominal.Name, nominal.School, ownerID, lastErr)
}
