package kpi

import (
	"context"
	"testing"
)

type recordingMirror struct {
	evaluations []Evaluation
}

func (m *recordingMirror) EnqueueEvaluation(ev Evaluation) {
	m.evaluations = append(m.evaluations, ev)
}

func newTestService(mirror Mirror) *Service {
	return NewService(NewStore(), NewConfigStore(DefaultConfiguration()), mirror)
}

func fullScores(cfg Configuration, rating float64) ScoreData {
	scores := ScoreData{}
	for _, section := range cfg.Sections() {
		for _, criterion := range section.Criteria {
			scores[criterion.Key] = rating
		}
	}
	return scores
}

func TestSubmitScoresCreatesPendingEvaluation(t *testing.T) {
	svc := newTestService(nil)

	ev := svc.SubmitScores(context.Background(), "S01", 6, 2026, ScoreData{"sellOut": 90})

	if ev.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", ev.Status)
	}
	if ev.SupervisorRated || ev.KasirRated || ev.HRDRated {
		t.Fatal("expected no section to be rated after a single criterion")
	}
	// Only the sellOut term contributes: 90 * 0.35 * 0.40.
	if ev.FinalScore != 12.6 {
		t.Fatalf("expected final score 12.6, got %v", ev.FinalScore)
	}
	if _, ok := svc.Get("S01", 6, 2026); !ok {
		t.Fatal("expected evaluation to be stored")
	}
}

func TestSubmitScoresMergesAcrossSubmissions(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"sellOut": 90, "activeOutlet": 85})
	ev := svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"effectiveCall": 80, "itemPerTrans": 85})

	if !ev.SupervisorRated {
		t.Fatal("expected supervisor section complete after both submissions")
	}
	if ev.KasirRated || ev.HRDRated {
		t.Fatal("expected kasir and hrd sections untouched")
	}
	if len(ev.Scores) != 4 {
		t.Fatalf("expected 4 merged scores, got %d", len(ev.Scores))
	}
	if ev.Status != StatusPending {
		t.Fatalf("expected PENDING with two sections unrated, got %s", ev.Status)
	}
}

func TestSubmitScoresStickyCompletion(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	cfg := svc.Configuration()

	supervisorPatch := ScoreData{}
	for _, criterion := range cfg.Supervisor.Criteria {
		supervisorPatch[criterion.Key] = 80
	}
	ev := svc.SubmitScores(ctx, "S01", 6, 2026, supervisorPatch)
	if !ev.SupervisorRated {
		t.Fatal("expected supervisor section rated")
	}

	// Grow the configured section afterwards so the stored scores no longer
	// cover it, then resubmit: the latch must hold.
	cfg.Supervisor.Criteria = append(cfg.Supervisor.Criteria, Criterion{Key: "custom_x", Label: "CUSTOM", Weight: 0.10})
	svc.ReplaceConfiguration(cfg)

	ev = svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"akurasiSetoran": 70})
	if !ev.SupervisorRated {
		t.Fatal("expected supervisorRated to stay true once set")
	}
}

func TestSubmitScoresIdempotentPatch(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	patch := ScoreData{"sellOut": 90, "activeOutlet": 85}

	first := svc.SubmitScores(ctx, "S01", 6, 2026, patch)
	second := svc.SubmitScores(ctx, "S01", 6, 2026, patch)

	if first.FinalScore != second.FinalScore {
		t.Fatalf("expected identical final scores, got %v then %v", first.FinalScore, second.FinalScore)
	}
	if len(first.Scores) != len(second.Scores) {
		t.Fatalf("expected identical score sets, got %d then %d keys", len(first.Scores), len(second.Scores))
	}
	for key, value := range first.Scores {
		if second.Scores[key] != value {
			t.Fatalf("expected score %s to stay %v, got %v", key, value, second.Scores[key])
		}
	}
}

func TestSubmitScoresEmptyPatchKeepsRecord(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	before := svc.SubmitScores(ctx, "S01", 6, 2026, fullScores(svc.Configuration(), 80))
	after := svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{})

	if after.FinalScore != before.FinalScore {
		t.Fatalf("expected final score unchanged, got %v then %v", before.FinalScore, after.FinalScore)
	}
	if after.Status != before.Status {
		t.Fatalf("expected status unchanged, got %s then %s", before.Status, after.Status)
	}
}

func TestSubmitScoresFullyRatedStatus(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	// Flat 80 across the catalog: supervisor raw 84 (weights sum 1.05), so
	// the total is 33.6 + 32 + 16.
	stay := svc.SubmitScores(ctx, "S01", 6, 2026, fullScores(svc.Configuration(), 80))
	if stay.Status != StatusStay {
		t.Fatalf("expected STAY at 81.6, got %s", stay.Status)
	}
	if stay.FinalScore != 81.6 {
		t.Fatalf("expected final score 81.6, got %v", stay.FinalScore)
	}

	leave := svc.SubmitScores(ctx, "S02", 6, 2026, fullScores(svc.Configuration(), 60))
	if leave.Status != StatusLeave {
		t.Fatalf("expected LEAVE at 60.0, got %s", leave.Status)
	}
}

func TestSubmitScoresKeepsUnknownKeys(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	ev := svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"custom_1719000000": 95})
	if _, ok := ev.Scores["custom_1719000000"]; !ok {
		t.Fatal("expected unconfigured key to be stored verbatim")
	}
	if ev.FinalScore != 0 {
		t.Fatalf("expected unconfigured key to contribute nothing, got %v", ev.FinalScore)
	}
}

func TestConfigChangeDoesNotRecomputeStoredEvaluations(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	ev := svc.SubmitScores(ctx, "S01", 6, 2026, fullScores(svc.Configuration(), 80))
	frozen := ev.FinalScore

	cfg := svc.Configuration()
	cfg.Supervisor.TotalWeight = 0.10
	cfg.Kasir.TotalWeight = 0.10
	cfg.HRD.TotalWeight = 0.80
	svc.ReplaceConfiguration(cfg)

	stored, ok := svc.Get("S01", 6, 2026)
	if !ok {
		t.Fatal("expected stored evaluation")
	}
	if stored.FinalScore != frozen {
		t.Fatalf("expected final score frozen at %v, got %v", frozen, stored.FinalScore)
	}
}

func TestSubmitScoresMirrorsEveryWrite(t *testing.T) {
	mirror := &recordingMirror{}
	svc := newTestService(mirror)
	ctx := context.Background()

	svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"sellOut": 90})
	svc.SubmitScores(ctx, "S01", 6, 2026, ScoreData{"activeOutlet": 85})

	if len(mirror.evaluations) != 2 {
		t.Fatalf("expected 2 mirrored writes, got %d", len(mirror.evaluations))
	}
	last := mirror.evaluations[1]
	if len(last.Scores) != 2 {
		t.Fatalf("expected mirrored evaluation to carry merged scores, got %d keys", len(last.Scores))
	}
}
