package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salestrack/internal/domain/kpi"
)

func TestLoadAllDecodesAndNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "getData" {
			t.Fatalf("unexpected action %q", r.URL.Query().Get("action"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"evaluations": []map[string]any{
					{
						"salesId":    "S01",
						"year":       2026,
						"month":      6,
						"scores":     map[string]float64{"sellOut": 0.5, "activeOutlet": 85},
						"finalScore": 0.8,
						"status":     "STAY",
					},
				},
				"principles": []string{"KALBE"},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	snapshot, err := client.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Evaluations) != 1 {
		t.Fatalf("expected 1 evaluation, got %d", len(snapshot.Evaluations))
	}
	ev := snapshot.Evaluations[0]
	if ev.Scores["sellOut"] != 50 {
		t.Fatalf("expected fractional sellOut normalized to 50, got %v", ev.Scores["sellOut"])
	}
	if ev.Scores["activeOutlet"] != 85 {
		t.Fatalf("expected whole rating untouched, got %v", ev.Scores["activeOutlet"])
	}
	if ev.FinalScore != 80 {
		t.Fatalf("expected final score normalized to 80, got %v", ev.FinalScore)
	}
	if snapshot.Principles[0] != "KALBE" {
		t.Fatalf("expected principle KALBE, got %v", snapshot.Principles)
	}
}

func TestLoadAllScriptError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error"})
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.LoadAll(context.Background()); err == nil {
		t.Fatal("expected error for script failure status")
	}
}

func TestSaveEvaluationPosts(t *testing.T) {
	var got kpi.Evaluation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("action") != "saveEvaluation" {
			t.Fatalf("unexpected action %q", r.URL.Query().Get("action"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	ev := kpi.Evaluation{SalesID: "S01", Year: 2026, Month: 6, FinalScore: 80, Status: kpi.StatusStay}
	if err := client.SaveEvaluation(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SalesID != "S01" || got.Status != kpi.StatusStay {
		t.Fatalf("unexpected mirrored payload: %+v", got)
	}
}
