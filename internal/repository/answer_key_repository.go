package repository

import (
	"context"

	"github.com/lshigami/Gabarito/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerKeyRepository interface {
	Create(ctx context.Context, key *model.AnswerKey) error
	// Upsert inserts the key with its explicit ID or overwrites answers and weight of the existing row.
	Upsert(ctx context.Context, key *model.AnswerKey) error
	FindByID(ctx context.Context, id uint) (*model.AnswerKey, error)
	FindAll(ctx context.Context) ([]model.AnswerKey, error)
}

type answerKeyRepository struct {
	db *gorm.DB
}

func NewAnswerKeyRepository(db *gorm.DB) AnswerKeyRepository {
	return &answerKeyRepository{db: db}
}

func (r *answerKeyRepository) Create(ctx context.Context, key *model.AnswerKey) error {
	explicitID := key.ID != 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(key).Error; err != nil {
			return err
		}
		if explicitID {
			return syncIDSequence(tx)
		}
		return nil
	})
}

func (r *answerKeyRepository) Upsert(ctx context.Context, key *model.AnswerKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answers", "weight_per_question", "updated_at"}),
		}).Create(key).Error
		if err != nil {
			return err
		}
		return syncIDSequence(tx)
	})
}

// syncIDSequence moves the postgres id sequence past explicitly chosen ids so
// later inserts do not collide. sqlite derives the next rowid from the table.
func syncIDSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT setval(pg_get_serial_sequence('answer_keys', 'id'), (SELECT COALESCE(MAX(id), 1) FROM answer_keys))").Error
}

func (r *answerKeyRepository) FindByID(ctx context.Context, id uint) (*model.AnswerKey, error) {
	var key model.AnswerKey
	if err := r.db.WithContext(ctx).First(&key, id).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

func (r *answerKeyRepository) FindAll(ctx context.Context) ([]model.AnswerKey, error) {
	var keys []model.AnswerKey
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
