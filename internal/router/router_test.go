package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/config"
	adminctrl "github.com/lshigami/Gabarito/internal/controller/admin"
	userctrl "github.com/lshigami/Gabarito/internal/controller/user"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/middleware"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/lshigami/Gabarito/internal/service"
	"github.com/lshigami/Gabarito/internal/testutil"
)

const secret = "router-test-secret"

type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	cfg := &config.Config{
		Auth:    config.Auth{JWTSecret: secret},
		Grading: config.Grading{QuestionCount: 5, DefaultWeight: 0.5},
		Ingest:  config.Ingest{BatchConcurrency: 2},
	}

	keys := repository.NewAnswerKeyRepository(db)
	participants := repository.NewParticipantRepository(db)
	leituras := repository.NewLeituraRepository(db)
	scoring := service.NewScoringService(keys)
	reconciliation := service.NewReconciliationService(participants)

	engine := NewGinEngine()
	RegisterRoutes(engine, cfg, Controllers{
		AnswerKeys:   adminctrl.NewAnswerKeyController(service.NewAnswerKeyService(keys, cfg)),
		Leituras:     userctrl.NewLeituraController(service.NewLeituraService(leituras, scoring, reconciliation, cfg)),
		Participants: userctrl.NewParticipantController(service.NewParticipantService(participants)),
	})
	return &api{t: t, engine: engine}
}

func (a *api) token(accountID uint, role string) string {
	a.t.Helper()
	tok, err := middleware.IssueToken(secret, accountID, role, time.Hour)
	if err != nil {
		a.t.Fatal(err)
	}
	return tok
}

func (a *api) call(method, path, token string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			a.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestAnswerKeyAdministration(t *testing.T) {
	a := newAPI(t)
	admin := a.token(1, middleware.RoleAdmin)
	userTok := a.token(2, middleware.RoleUser)

	body := map[string]any{"id": 10, "answers": "abcde"}
	if code := a.call(http.MethodPost, "/api/v1/admin/answer-keys", userTok, body, nil); code != http.StatusForbidden {
		t.Errorf("user create: %d, want 403", code)
	}
	var created dto.AnswerKeyResponseDTO
	if code := a.call(http.MethodPost, "/api/v1/admin/answer-keys", admin, body, &created); code != http.StatusCreated {
		t.Fatalf("admin create: %d", code)
	}
	if created.ID != 10 || created.MaxScore != 2.5 {
		t.Errorf("created = %+v", created)
	}
	if code := a.call(http.MethodPost, "/api/v1/admin/answer-keys", admin, map[string]any{"answers": "abc"}, nil); code != http.StatusBadRequest {
		t.Errorf("wrong length: %d, want 400", code)
	}
	if code := a.call(http.MethodPost, "/api/v1/admin/answer-keys", admin, map[string]any{"answers": "abcde", "weight_per_question": 1000}, nil); code != http.StatusBadRequest {
		t.Errorf("oversized weight: %d, want 400", code)
	}
	if code := a.call(http.MethodPut, "/api/v1/admin/answer-keys/10", admin, map[string]any{"answers": "eeeee", "weight_per_question": 1}, nil); code != http.StatusOK {
		t.Errorf("upsert: %d", code)
	}

	var got dto.AnswerKeyResponseDTO
	if code := a.call(http.MethodGet, "/api/v1/answer-keys/10", userTok, nil, &got); code != http.StatusOK {
		t.Fatalf("get: %d", code)
	}
	if got.Answers != "eeeee" || got.WeightPerQuestion != 1 {
		t.Errorf("got = %+v", got)
	}
	if code := a.call(http.MethodGet, "/api/v1/answer-keys/99", userTok, nil, nil); code != http.StatusNotFound {
		t.Errorf("missing key: %d, want 404", code)
	}
	if code := a.call(http.MethodGet, "/api/v1/answer-keys/abc", userTok, nil, nil); code != http.StatusBadRequest {
		t.Errorf("bad id: %d, want 400", code)
	}
	if code := a.call(http.MethodGet, "/api/v1/answer-keys", "", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("anonymous: %d, want 401", code)
	}
}

func TestLeituraFlow(t *testing.T) {
	a := newAPI(t)
	admin := a.token(1, middleware.RoleAdmin)
	accountA := a.token(2, middleware.RoleUser)
	accountB := a.token(3, middleware.RoleUser)

	var key dto.AnswerKeyResponseDTO
	if code := a.call(http.MethodPost, "/api/v1/admin/answer-keys", admin, map[string]any{"answers": "abcde"}, &key); code != http.StatusCreated {
		t.Fatalf("create key: %d", code)
	}

	var p1 dto.ParticipantResponseDTO
	if code := a.call(http.MethodPost, "/api/v1/participants", accountA, map[string]any{"name": "Ana", "school": "Escola 1"}, &p1); code != http.StatusCreated {
		t.Fatalf("register: %d", code)
	}
	if code := a.call(http.MethodPost, "/api/v1/participants", accountA, map[string]any{"name": "Ana", "school": "Escola 1"}, nil); code != http.StatusConflict {
		t.Errorf("duplicate register: %d, want 409", code)
	}

	raw := map[string]any{"source_file": "sheet.png", "status_code": 0, "answer_key_id": key.ID, "participant_id": p1.ID, "answers": "aaaaa"}
	var leitura dto.LeituraResponseDTO
	if code := a.call(http.MethodPost, "/api/v1/leituras", accountB, raw, &leitura); code != http.StatusCreated {
		t.Fatalf("ingest: %d", code)
	}
	if leitura.ParticipantID == nil || *leitura.ParticipantID == p1.ID {
		t.Errorf("participant = %v, want B's shadow", leitura.ParticipantID)
	}
	if leitura.NominalParticipant == nil || leitura.NominalParticipant.Name != "Ana" {
		t.Errorf("nominal = %+v", leitura.NominalParticipant)
	}
	if leitura.CorrectCount != 1 || leitura.Score != 0.5 {
		t.Errorf("scoring = {%d %v}", leitura.CorrectCount, leitura.Score)
	}

	path := "/api/v1/leituras/" + jsonID(leitura.ID)
	if code := a.call(http.MethodPatch, path, accountB, map[string]any{}, nil); code != http.StatusBadRequest {
		t.Errorf("empty patch: %d, want 400", code)
	}
	if code := a.call(http.MethodPatch, path, accountB, map[string]any{"answers": "abcdz"}, nil); code != http.StatusBadRequest {
		t.Errorf("malformed answers: %d, want 400", code)
	}
	var corrected dto.LeituraResponseDTO
	if code := a.call(http.MethodPatch, path, accountB, map[string]any{"answers": "abcde"}, &corrected); code != http.StatusOK {
		t.Fatalf("correct: %d", code)
	}
	if corrected.CorrectCount != 5 || corrected.Score != 2.5 {
		t.Errorf("corrected = {%d %v}", corrected.CorrectCount, corrected.Score)
	}

	var unidentified dto.LeituraResponseDTO
	if code := a.call(http.MethodPatch, path, accountB, map[string]any{"answer_key_id": -1}, &unidentified); code != http.StatusOK {
		t.Fatalf("unidentified key patch: %d", code)
	}
	if unidentified.AnswerKeyID != nil || unidentified.Score != 0 {
		t.Errorf("unidentified = key %v score %v", unidentified.AnswerKeyID, unidentified.Score)
	}
	if code := a.call(http.MethodPatch, path, accountB, map[string]any{"answer_key_id": key.ID}, &corrected); code != http.StatusOK {
		t.Fatalf("restore key: %d", code)
	}

	if code := a.call(http.MethodGet, path, accountA, nil, nil); code != http.StatusNotFound {
		t.Errorf("A reads B's leitura: %d, want 404", code)
	}

	var stats dto.LeituraStatsDTO
	if code := a.call(http.MethodGet, "/api/v1/leituras/stats", accountB, nil, &stats); code != http.StatusOK {
		t.Fatalf("stats: %d", code)
	}
	if stats.Total != 1 || stats.MaxScore != 2.5 {
		t.Errorf("stats = %+v", stats)
	}

	var deleted dto.LeituraResponseDTO
	if code := a.call(http.MethodDelete, path, accountB, nil, &deleted); code != http.StatusOK {
		t.Fatalf("delete: %d", code)
	}
	if deleted.ID != leitura.ID {
		t.Errorf("deleted id = %d", deleted.ID)
	}
	if code := a.call(http.MethodDelete, path, accountB, nil, nil); code != http.StatusNotFound {
		t.Errorf("second delete: %d, want 404", code)
	}
}

func TestIngestValidationAndBatch(t *testing.T) {
	a := newAPI(t)
	tok := a.token(4, middleware.RoleUser)

	if code := a.call(http.MethodPost, "/api/v1/leituras", tok, map[string]any{"source_file": "x.png", "status_code": 7}, nil); code != http.StatusBadRequest {
		t.Errorf("bad status: %d, want 400", code)
	}
	if code := a.call(http.MethodPost, "/api/v1/leituras", tok, map[string]any{"source_file": "x.png", "status_code": 0, "answer_key_id": 55}, nil); code != http.StatusNotFound {
		t.Errorf("unknown key: %d, want 404", code)
	}

	batch := map[string]any{"readings": []map[string]any{
		{"source_file": "1.png", "status_code": 0, "answer_key_id": -1, "participant_id": -1, "answers": "abcde"},
		{"source_file": "2.png", "status_code": 3, "answer_key_id": -1, "participant_id": -1, "answers": ""},
		{"source_file": "3.png", "status_code": 0, "answer_key_id": 55, "participant_id": -1, "answers": "abcde"},
	}}
	var result dto.BatchResultDTO
	if code := a.call(http.MethodPost, "/api/v1/leituras/batch", tok, batch, &result); code != http.StatusOK {
		t.Fatalf("batch: %d", code)
	}
	if result.Total != 3 || result.Processed != 2 || result.Failed != 1 {
		t.Errorf("batch = %d/%d/%d", result.Total, result.Processed, result.Failed)
	}

	var list []dto.LeituraResponseDTO
	if code := a.call(http.MethodGet, "/api/v1/leituras", tok, nil, &list); code != http.StatusOK {
		t.Fatalf("list: %d", code)
	}
	if len(list) != 2 {
		t.Errorf("visible = %d, want 2", len(list))
	}
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
