// Package testutil provides an in-memory store for package tests.
package testutil

import (
	"testing"

	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/database"
	"github.com/lshigami/Gabarito/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory sqlite database closed at test cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{Driver: database.DriverSQLite, Path: ":memory:"}, gormlogger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func SeedAnswerKey(t *testing.T, db *gorm.DB, answers string, weight float64) model.AnswerKey {
	t.Helper()
	key := model.AnswerKey{Answers: answers, WeightPerQuestion: weight}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("seed answer key: %v", err)
	}
	return key
}

func SeedParticipant(t *testing.T, db *gorm.DB, name, school string, owner uint) model.Participant {
	t.Helper()
	p := model.Participant{Name: name, School: school, OwnerAccountID: &owner}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return p
}

func CountParticipants(t *testing.T, db *gorm.DB, name, school string, owner uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Participant{}).
		Where("name = ? AND school = ? AND owner_account_id = ?", name, school, owner).
		Count(&n).Error; err != nil {
		t.Fatalf("count participants: %v", err)
	}
	return n
}
