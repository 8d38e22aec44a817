package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAnswerKeyNotFound      = errors.New("answer key not found")
	ErrMalformedAnswerString  = errors.New("malformed answer string")
	ErrLeituraNotFound        = errors.New("leitura not found")
	ErrReconciliationRaceLost = errors.New("participant reconciliation lost the race twice")
	ErrEmptyPatch             = errors.New("no field supplied for update")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrDuplicateParticipant   = errors.New("participant already registered")
	ErrInvalidAnswerKey       = errors.New("invalid answer key")
	ErrInvalidReading         = errors.New("invalid reading")
	ErrInvalidParticipant     = errors.New("invalid participant")
)

// isUniqueViolation recognises a unique-constraint failure from either driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
