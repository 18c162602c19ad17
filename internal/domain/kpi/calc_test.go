package kpi

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSectionRawAndScore(t *testing.T) {
	cfg := DefaultConfiguration()
	scores := ScoreData{
		"sellOut":       90,
		"activeOutlet":  85,
		"effectiveCall": 80,
		"itemPerTrans":  85,
	}

	raw := SectionRaw(scores, cfg.Supervisor)
	if !almostEqual(raw, 89.75) {
		t.Fatalf("expected supervisor raw 89.75, got %v", raw)
	}

	score := SectionScore(scores, cfg.Supervisor)
	if !almostEqual(score, 35.90) {
		t.Fatalf("expected supervisor section score 35.90, got %v", score)
	}
}

func TestMissingCriterionCountsAsZero(t *testing.T) {
	cfg := DefaultConfiguration()
	full := ScoreData{
		"sellOut":       80,
		"activeOutlet":  80,
		"effectiveCall": 80,
		"itemPerTrans":  80,
	}
	partial := ScoreData{
		"sellOut":       80,
		"activeOutlet":  80,
		"effectiveCall": 80,
	}

	// The stock supervisor criteria weights sum to 1.05, so flat 80 lands on
	// 84, not 80.
	if raw := SectionRaw(full, cfg.Supervisor); !almostEqual(raw, 84) {
		t.Fatalf("expected full raw 84, got %v", raw)
	}
	// itemPerTrans missing: its 0.15 weighted term contributes 0.
	if raw := SectionRaw(partial, cfg.Supervisor); !almostEqual(raw, 72) {
		t.Fatalf("expected partial raw 72, got %v", raw)
	}
}

func TestZeroRatingIsPresent(t *testing.T) {
	cfg := DefaultConfiguration()
	scores := ScoreData{
		"sellOut":       0,
		"activeOutlet":  0,
		"effectiveCall": 0,
		"itemPerTrans":  0,
	}
	if !SectionComplete(scores, cfg.Supervisor) {
		t.Fatal("expected section with explicit zero ratings to be complete")
	}
	if SectionComplete(ScoreData{}, cfg.Supervisor) {
		t.Fatal("expected empty scores to leave section incomplete")
	}
}

func TestTotalReproducesDocumentedFinalScore(t *testing.T) {
	cfg := DefaultConfiguration()
	scores := ScoreData{
		"sellOut":       90,
		"activeOutlet":  85,
		"effectiveCall": 80,
		"itemPerTrans":  85,
		// 84.25 raw for the kasir section, 96.25 for hrd: together with the
		// supervisor block above this lands on the documented 88.85 total.
		"akurasiSetoran": 84.25,
		"sisaFaktur":     84.25,
		"overdue":        84.25,
		"updateSetoran":  84.25,
		"absensi":        96.25,
		"terlambat":      96.25,
		"fingerScan":     96.25,
	}

	total := Total(scores, cfg)
	if got := Round2(total); got != 88.85 {
		t.Fatalf("expected final score 88.85, got %v", got)
	}
	if status := StatusFor(total, true, true, true); status != StatusStay {
		t.Fatalf("expected status STAY, got %s", status)
	}
}

func TestStatusThresholdIsInclusive(t *testing.T) {
	if status := StatusFor(StayThreshold, true, true, true); status != StatusStay {
		t.Fatalf("expected STAY exactly at the threshold, got %s", status)
	}
	if status := StatusFor(74.9999, true, true, true); status != StatusLeave {
		t.Fatalf("expected LEAVE below threshold, got %s", status)
	}
	if status := StatusFor(100, true, true, true); status != StatusStay {
		t.Fatalf("expected STAY above threshold, got %s", status)
	}
}

func TestStatusPendingWheneverSectionUnrated(t *testing.T) {
	for _, tc := range []struct {
		supervisor, kasir, hrd Completion
	}{
		{false, true, true},
		{true, false, true},
		{true, true, false},
		{false, false, false},
	} {
		if status := StatusFor(100, tc.supervisor, tc.kasir, tc.hrd); status != StatusPending {
			t.Fatalf("expected PENDING for flags %v/%v/%v, got %s", tc.supervisor, tc.kasir, tc.hrd, status)
		}
	}
}

func TestRound2(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{88.854, 88.85},
		{88.855, 88.86},
		{-1.005, -1.0},
		{75.0, 75.0},
	} {
		if got := Round2(tc.in); !almostEqual(got, tc.want) {
			t.Fatalf("expected Round2(%v) = %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestUnknownKeysIgnoredByArithmetic(t *testing.T) {
	cfg := DefaultConfiguration()
	scores := ScoreData{"sellOut": 90, "custom_1719000000": 100}
	withOnly := ScoreData{"sellOut": 90}

	if got, want := Total(scores, cfg), Total(withOnly, cfg); !almostEqual(got, want) {
		t.Fatalf("expected unknown key to not change total: %v vs %v", got, want)
	}
}

func TestWeightWarningsAdvisoryOnly(t *testing.T) {
	// The stock catalog itself drifts: the supervisor criteria sum to 1.05.
	// That is a warning, never an error, and the configuration is used as-is.
	cfg := DefaultConfiguration()
	warnings := cfg.WeightWarnings()
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the stock catalog, got %v", warnings)
	}

	cfg.Kasir.Criteria[0].Weight = 0.50
	if warnings := cfg.WeightWarnings(); len(warnings) != 2 {
		t.Fatalf("expected drifted kasir weights to add a warning, got %v", warnings)
	}
}
