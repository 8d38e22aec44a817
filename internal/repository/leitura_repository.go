package repository

import (
	"context"

	"github.com/lshigami/Gabarito/internal/model"
	"gorm.io/gorm"
)

// Scope restricts which leituras an account may see or change.
// A leitura is visible when its participant is owned by the account, or when
// it has no participant and the account created it. All lifts the restriction.
type Scope struct {
	AccountID uint
	All       bool
}

// LeituraStats aggregates the leituras visible within a scope.
type LeituraStats struct {
	Total              int64
	Successful         int64
	Failed             int64
	AverageScore       float64
	MaxScore           float64
	MinScore           float64
	UniqueParticipants int64
	DistinctAnswerKeys int64
}

// AnswerKeyAverage is the mean score obtained against one answer key.
type AnswerKeyAverage struct {
	AnswerKeyID  uint
	AverageScore float64
}

type LeituraRepository interface {
	Create(ctx context.Context, leitura *model.Leitura) error
	// UpdateScoring writes the correctable fields and the derived score in one
	// statement. It returns gorm.ErrRecordNotFound when the row no longer exists.
	UpdateScoring(ctx context.Context, leitura *model.Leitura) error
	FindByID(ctx context.Context, scope Scope, id uint) (*model.Leitura, error)
	FindByIDWithDetails(ctx context.Context, scope Scope, id uint) (*model.Leitura, error)
	FindAllWithDetails(ctx context.Context, scope Scope) ([]model.Leitura, error)
	// Delete removes the row if visible in scope and returns it.
	Delete(ctx context.Context, scope Scope, id uint) (*model.Leitura, error)
	Stats(ctx context.Context, scope Scope) (*LeituraStats, error)
	BestAnswerKey(ctx context.Context, scope Scope) (*AnswerKeyAverage, error)
}

type leituraRepository struct {
	db *gorm.DB
}

func NewLeituraRepository(db *gorm.DB) LeituraRepository {
	return &leituraRepository{db: db}
}

func (r *leituraRepository) scoped(ctx context.Context, scope Scope) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Leitura{}).
		Joins("LEFT JOIN participants ON participants.id = leituras.participant_id")
	if scope.All {
		return query
	}
	return query.Where(
		"participants.owner_account_id = ? OR (leituras.participant_id IS NULL AND leituras.creating_account_id = ?)",
		scope.AccountID, scope.AccountID,
	)
}

func (r *leituraRepository) Create(ctx context.Context, leitura *model.Leitura) error {
	return r.db.WithContext(ctx).Omit("AnswerKey", "Participant").Create(leitura).Error
}

func (r *leituraRepository) UpdateScoring(ctx context.Context, leitura *model.Leitura) error {
	result := r.db.WithContext(ctx).Model(leitura).Updates(map[string]interface{}{
		"answer_key_id":     leitura.AnswerKeyID,
		"participant_id":    leitura.ParticipantID,
		"submitted_answers": leitura.SubmittedAnswers,
		"correct_count":     leitura.CorrectCount,
		"score":             leitura.Score,
	})
	if result.Error != nil {
		return result.Error
	}
	// The row was deleted after it was read.
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *leituraRepository) FindByID(ctx context.Context, scope Scope, id uint) (*model.Leitura, error) {
	var leitura model.Leitura
	err := r.scoped(ctx, scope).
		Select("leituras.*").
		Where("leituras.id = ?", id).
		First(&leitura).Error
	if err != nil {
		return nil, err
	}
	return &leitura, nil
}

func (r *leituraRepository) FindByIDWithDetails(ctx context.Context, scope Scope, id uint) (*model.Leitura, error) {
	var leitura model.Leitura
	err := r.scoped(ctx, scope).
		Select("leituras.*").
		Preload("AnswerKey").
		Preload("Participant").
		Where("leituras.id = ?", id).
		First(&leitura).Error
	if err != nil {
		return nil, err
	}
	return &leitura, nil
}

func (r *leituraRepository) FindAllWithDetails(ctx context.Context, scope Scope) ([]model.Leitura, error) {
	var leituras []model.Leitura
	err := r.scoped(ctx, scope).
		Select("leituras.*").
		Preload("AnswerKey").
		Preload("Participant").
		Order("leituras.created_at DESC, leituras.id DESC").
		Find(&leituras).Error
	return leituras, err
}

func (r *leituraRepository) Delete(ctx context.Context, scope Scope, id uint) (*model.Leitura, error) {
	var deleted *model.Leitura
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &leituraRepository{db: tx}
		leitura, err := txRepo.FindByID(ctx, scope, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&model.Leitura{}, leitura.ID).Error; err != nil {
			return err
		}
		deleted = leitura
		return nil
	})
	return deleted, err
}

func (r *leituraRepository) Stats(ctx context.Context, scope Scope) (*LeituraStats, error) {
	var stats LeituraStats
	err := r.scoped(ctx, scope).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN leituras.status_code = 0 THEN 1 END) AS successful,
			COUNT(CASE WHEN leituras.status_code > 0 THEN 1 END) AS failed,
			COALESCE(AVG(leituras.score), 0) AS average_score,
			COALESCE(MAX(leituras.score), 0) AS max_score,
			COALESCE(MIN(leituras.score), 0) AS min_score,
			COUNT(DISTINCT leituras.participant_id) AS unique_participants,
			COUNT(DISTINCT leituras.answer_key_id) AS distinct_answer_keys`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *leituraRepository) BestAnswerKey(ctx context.Context, scope Scope) (*AnswerKeyAverage, error) {
	var best []AnswerKeyAverage
	err := r.scoped(ctx, scope).
		Select("leituras.answer_key_id AS answer_key_id, AVG(leituras.score) AS average_score").
		Where("leituras.answer_key_id IS NOT NULL").
		Group("leituras.answer_key_id").
		Order("average_score DESC").
		Limit(1).
		Scan(&best).Error
	if err != nil {
		return nil, err
	}
	if len(best) == 0 {
		return nil, nil
	}
	return &best[0], nil
}
