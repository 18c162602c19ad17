package reports

import (
	"testing"

	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
)

var testSales = []roster.SalesPerson{
	{ID: "S01", FullName: "ANTO", Principle: "KALBE", SupervisorName: "NINA AFRIDA"},
	{ID: "S02", FullName: "BUDI", Principle: "KALBE", SupervisorName: "NINA AFRIDA"},
	{ID: "S06", FullName: "ANI", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO"},
}

func ratedEval(salesID string, month, year int, status string) kpi.Evaluation {
	return kpi.Evaluation{
		SalesID:         salesID,
		Month:           month,
		Year:            year,
		SupervisorRated: true,
		KasirRated:      true,
		HRDRated:        true,
		Status:          status,
	}
}

func TestStatusCounts(t *testing.T) {
	evals := []kpi.Evaluation{
		ratedEval("S01", 6, 2026, kpi.StatusStay),
		ratedEval("S02", 6, 2026, kpi.StatusLeave),
		{SalesID: "S06", Month: 6, Year: 2026, Status: kpi.StatusPending},
		ratedEval("S01", 5, 2026, kpi.StatusStay),
	}

	stay, leave := StatusCounts(evals, testSales, Period{Mode: PeriodMonth, Month: 6, Year: 2026})
	if stay != 1 || leave != 1 {
		t.Fatalf("expected 1 stay / 1 leave, got %d / %d", stay, leave)
	}
}

func TestPeriodQuarterAndYear(t *testing.T) {
	p := Period{Mode: PeriodQuarter, Month: 5, Year: 2026}
	if !p.Contains(4, 2026) || !p.Contains(6, 2026) {
		t.Fatal("expected April and June inside Q2")
	}
	if p.Contains(7, 2026) {
		t.Fatal("expected July outside Q2")
	}

	y := Period{Mode: PeriodYear, Month: 5, Year: 2026}
	if !y.Contains(12, 2026) {
		t.Fatal("expected December inside year period")
	}
	if y.Contains(12, 2025) {
		t.Fatal("expected other year excluded")
	}
}

func TestPercentZeroGroup(t *testing.T) {
	if got := Percent(0, 0); got != 0 {
		t.Fatalf("expected 0%% for empty group, got %d", got)
	}
	if got := Percent(2, 3); got != 67 {
		t.Fatalf("expected 67%%, got %d", got)
	}
}

func TestProgressByPrinciple(t *testing.T) {
	evals := []kpi.Evaluation{
		ratedEval("S01", 6, 2026, kpi.StatusStay),
		{SalesID: "S02", Month: 6, Year: 2026, Status: kpi.StatusPending},
	}

	rows := ProgressByPrinciple(evals, testSales, Period{Mode: PeriodMonth, Month: 6, Year: 2026})
	if len(rows) != 2 {
		t.Fatalf("expected 2 principle rows, got %d", len(rows))
	}

	kalbe := rows[0]
	if kalbe.Name != "KALBE" {
		t.Fatalf("expected KALBE first, got %s", kalbe.Name)
	}
	if kalbe.Total != 2 || kalbe.Rated != 1 || kalbe.Unrated != 1 {
		t.Fatalf("unexpected KALBE row: %+v", kalbe)
	}
	if kalbe.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", kalbe.Percentage)
	}

	unilever := rows[1]
	if unilever.Rated != 0 || unilever.Percentage != 0 {
		t.Fatalf("unexpected UNILEVER row: %+v", unilever)
	}
}

func TestMonthlyTrendAlwaysTwelveRows(t *testing.T) {
	evals := []kpi.Evaluation{
		ratedEval("S01", 3, 2026, kpi.StatusStay),
		ratedEval("S02", 3, 2026, kpi.StatusLeave),
		ratedEval("S01", 11, 2026, kpi.StatusStay),
		ratedEval("S01", 3, 2025, kpi.StatusStay),
	}

	rows := MonthlyTrend(evals, testSales, 2026)
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	if rows[2].Stay != 1 || rows[2].Leave != 1 {
		t.Fatalf("unexpected March row: %+v", rows[2])
	}
	if rows[10].Stay != 1 {
		t.Fatalf("unexpected November row: %+v", rows[10])
	}
	if rows[0].Stay != 0 || rows[0].Leave != 0 {
		t.Fatalf("expected empty January row, got %+v", rows[0])
	}
}

func TestSectionBreakdownUsesGivenConfig(t *testing.T) {
	cfg := kpi.DefaultConfiguration()
	ev := kpi.Evaluation{
		SalesID: "S01",
		Scores: kpi.ScoreData{
			"sellOut":       90,
			"activeOutlet":  85,
			"effectiveCall": 80,
			"itemPerTrans":  85,
		},
	}

	bd := SectionBreakdown(ev, cfg)
	if bd.Supervisor != 35.9 {
		t.Fatalf("expected supervisor part 35.9, got %v", bd.Supervisor)
	}
	if bd.Kasir != 0 || bd.HRD != 0 {
		t.Fatalf("expected empty kasir/hrd parts, got %+v", bd)
	}

	// Retuned weights change the displayed parts even though any stored
	// FinalScore stays frozen.
	cfg.Supervisor.TotalWeight = 0.20
	bd = SectionBreakdown(ev, cfg)
	if bd.Supervisor != 17.95 {
		t.Fatalf("expected supervisor part 17.95 after retune, got %v", bd.Supervisor)
	}
}
