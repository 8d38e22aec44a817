package repository

import (
	"context"

	"github.com/lshigami/Gabarito/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *model.Participant) error
	FindByID(ctx context.Context, id uint) (*model.Participant, error)
	// FindByIdentity looks up the row owned by ownerID with exactly this name and school.
	FindByIdentity(ctx context.Context, name, school string, ownerID uint) (*model.Participant, error)
	// CreateIfAbsent inserts the row unless its identity already exists.
	// It reports false when another writer holds the identity.
	CreateIfAbsent(ctx context.Context, participant *model.Participant) (bool, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]model.Participant, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *model.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) FindByID(ctx context.Context, id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindByIdentity(ctx context.Context, name, school string, ownerID uint) (*model.Participant, error) {
	var participant model.Participant
	err := r.db.WithContext(ctx).
		Where("name = ? AND school = ? AND owner_account_id = ?", name, school, ownerID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) CreateIfAbsent(ctx context.Context, participant *model.Participant) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "school"}, {Name: "owner_account_id"}},
		DoNothing: true,
	}).Create(participant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *participantRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.WithContext(ctx).
		Where("owner_account_id = ?", ownerID).
		Order("name ASC").
		Find(&participants).Error
	return participants, err
}
