package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/lshigami/Gabarito/internal/testutil"
)

func newAnswerKeyService(t *testing.T, questionCount int) AnswerKeyService {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{Grading: config.Grading{QuestionCount: questionCount, DefaultWeight: 0.5}}
	return NewAnswerKeyService(repository.NewAnswerKeyRepository(db), cfg)
}

func TestCreateAnswerKeyDefaults(t *testing.T) {
	svc := newAnswerKeyService(t, 0)

	resp, err := svc.CreateAnswerKey(context.Background(), dto.AnswerKeyCreateDTO{Answers: " ABCDE "})
	if err != nil {
		t.Fatalf("CreateAnswerKey: %v", err)
	}
	if resp.ID == 0 || resp.Answers != "abcde" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.WeightPerQuestion != 0.5 || resp.QuestionCount != 5 || resp.MaxScore != 2.5 {
		t.Errorf("weight %v questions %d max %v", resp.WeightPerQuestion, resp.QuestionCount, resp.MaxScore)
	}
}

func TestCreateAnswerKeyExplicitID(t *testing.T) {
	svc := newAnswerKeyService(t, 0)
	ctx := context.Background()
	id := uint(42)
	weight := 1.0

	resp, err := svc.CreateAnswerKey(ctx, dto.AnswerKeyCreateDTO{ID: &id, Answers: "abc", WeightPerQuestion: &weight})
	if err != nil {
		t.Fatalf("CreateAnswerKey: %v", err)
	}
	if resp.ID != 42 || resp.MaxScore != 3 {
		t.Errorf("resp = %+v", resp)
	}

	_, err = svc.CreateAnswerKey(ctx, dto.AnswerKeyCreateDTO{ID: &id, Answers: "abc"})
	if !errors.Is(err, ErrInvalidAnswerKey) {
		t.Errorf("duplicate id: err = %v, want ErrInvalidAnswerKey", err)
	}
}

func TestCreateAnswerKeyValidation(t *testing.T) {
	svc := newAnswerKeyService(t, 5)
	ctx := context.Background()
	zero := 0.0

	cases := map[string]dto.AnswerKeyCreateDTO{
		"sentinel in key": {Answers: "abcX?"},
		"wrong length":    {Answers: "abc"},
		"empty":           {Answers: "  "},
		"zero weight":     {Answers: "abcde", WeightPerQuestion: &zero},
	}
	for name, req := range cases {
		if _, err := svc.CreateAnswerKey(ctx, req); !errors.Is(err, ErrInvalidAnswerKey) {
			t.Errorf("%s: err = %v, want ErrInvalidAnswerKey", name, err)
		}
	}
}

func TestUpsertAnswerKey(t *testing.T) {
	svc := newAnswerKeyService(t, 0)
	ctx := context.Background()

	inserted, err := svc.UpsertAnswerKey(ctx, 7, dto.AnswerKeyUpsertDTO{Answers: "abcde"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if inserted.ID != 7 || inserted.Answers != "abcde" {
		t.Errorf("inserted = %+v", inserted)
	}

	weight := 2.0
	replaced, err := svc.UpsertAnswerKey(ctx, 7, dto.AnswerKeyUpsertDTO{Answers: "eeeee", WeightPerQuestion: &weight})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.Answers != "eeeee" || replaced.WeightPerQuestion != 2 {
		t.Errorf("replaced = %+v", replaced)
	}

	all, err := svc.GetAllAnswerKeys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("keys = %d, want 1", len(all))
	}

	next, err := svc.CreateAnswerKey(ctx, dto.AnswerKeyCreateDTO{Answers: "abc"})
	if err != nil {
		t.Fatalf("create after upsert: %v", err)
	}
	if next.ID <= 7 {
		t.Errorf("next id = %d, want > 7", next.ID)
	}
}

func TestGetAnswerKeyNotFound(t *testing.T) {
	svc := newAnswerKeyService(t, 0)
	if _, err := svc.GetAnswerKey(context.Background(), 1); !errors.Is(err, ErrAnswerKeyNotFound) {
		t.Errorf("err = %v, want ErrAnswerKeyNotFound", err)
	}
}

func TestAnswerKeyWeightRoundedToColumnScale(t *testing.T) {
	svc := newAnswerKeyService(t, 0)
	ctx := context.Background()
	weight := 0.335

	resp, err := svc.CreateAnswerKey(ctx, dto.AnswerKeyCreateDTO{Answers: "abc", WeightPerQuestion: &weight})
	if err != nil {
		t.Fatalf("CreateAnswerKey: %v", err)
	}
	if resp.WeightPerQuestion != 0.34 || resp.MaxScore != 1.02 {
		t.Errorf("weight %v max %v, want 0.34 and 1.02", resp.WeightPerQuestion, resp.MaxScore)
	}

	stored, err := svc.GetAnswerKey(ctx, resp.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.WeightPerQuestion != 0.34 {
		t.Errorf("stored weight = %v, want 0.34", stored.WeightPerQuestion)
	}
}

func TestAnswerKeyWeightBounds(t *testing.T) {
	svc := newAnswerKeyService(t, 0)
	ctx := context.Background()

	for _, w := range []float64{1000, 0.004} {
		weight := w
		if _, err := svc.CreateAnswerKey(ctx, dto.AnswerKeyCreateDTO{Answers: "abc", WeightPerQuestion: &weight}); !errors.Is(err, ErrInvalidAnswerKey) {
			t.Errorf("weight %v: err = %v, want ErrInvalidAnswerKey", w, err)
		}
	}
	limit := MaxWeightPerQuestion
	if _, err := svc.UpsertAnswerKey(ctx, 3, dto.AnswerKeyUpsertDTO{Answers: "abc", WeightPerQuestion: &limit}); err != nil {
		t.Errorf("max weight rejected: %v", err)
	}
}
