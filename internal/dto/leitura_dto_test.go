package dto

import (
	"encoding/json"
	"testing"
)

func TestLeituraPatchDistinguishesAbsentFromNull(t *testing.T) {
	tests := []struct {
		body        string
		keySet      bool
		keyNil      bool
		participant bool
		answers     bool
		empty       bool
	}{
		{body: `{}`, empty: true},
		{body: `{"answer_key_id": null}`, keySet: true, keyNil: true},
		{body: `{"answer_key_id": 3}`, keySet: true},
		{body: `{"participant_id": 9, "answers": "abc"}`, participant: true, answers: true},
	}
	for _, tt := range tests {
		var patch LeituraPatchDTO
		if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
			t.Fatalf("%s: %v", tt.body, err)
		}
		if patch.AnswerKeyID.Set != tt.keySet {
			t.Errorf("%s: key set = %v", tt.body, patch.AnswerKeyID.Set)
		}
		if tt.keySet && (patch.AnswerKeyID.Value == nil) != tt.keyNil {
			t.Errorf("%s: key value = %v", tt.body, patch.AnswerKeyID.Value)
		}
		if patch.ParticipantID.Set != tt.participant {
			t.Errorf("%s: participant set = %v", tt.body, patch.ParticipantID.Set)
		}
		if (patch.Answers != nil) != tt.answers {
			t.Errorf("%s: answers = %v", tt.body, patch.Answers)
		}
		if patch.Empty() != tt.empty {
			t.Errorf("%s: Empty() = %v", tt.body, patch.Empty())
		}
	}

	var patch LeituraPatchDTO
	if err := json.Unmarshal([]byte(`{"answer_key_id": 3}`), &patch); err != nil {
		t.Fatal(err)
	}
	if *patch.AnswerKeyID.Value != 3 {
		t.Errorf("key = %d, want 3", *patch.AnswerKeyID.Value)
	}
}

func TestOptionalIDSentinelsDecodeAsCleared(t *testing.T) {
	for _, body := range []string{`{"answer_key_id": 0}`, `{"answer_key_id": -1}`} {
		var patch LeituraPatchDTO
		if err := json.Unmarshal([]byte(body), &patch); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if !patch.AnswerKeyID.Set || patch.AnswerKeyID.Value != nil {
			t.Errorf("%s: got set=%v value=%v, want set with nil value", body, patch.AnswerKeyID.Set, patch.AnswerKeyID.Value)
		}
		if patch.Empty() {
			t.Errorf("%s: patch reported empty", body)
		}
	}
}

func TestOptionalIDRejectsNonNumeric(t *testing.T) {
	var patch LeituraPatchDTO
	if err := json.Unmarshal([]byte(`{"participant_id": "seven"}`), &patch); err == nil {
		t.Error("string id accepted")
	}
}
