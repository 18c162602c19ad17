package reports

import (
	"math"

	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
)

const (
	PeriodMonth   = "MONTH"
	PeriodQuarter = "QUARTER"
	PeriodYear    = "YEAR"
)

// Period selects evaluations relative to an anchor month. MONTH matches the
// anchor month only, QUARTER the anchor's calendar quarter, YEAR the whole
// anchor year.
type Period struct {
	Mode  string
	Month int
	Year  int
}

func (p Period) Contains(month, year int) bool {
	if year != p.Year {
		return false
	}
	switch p.Mode {
	case PeriodQuarter:
		return quarterOf(month) == quarterOf(p.Month)
	case PeriodYear:
		return true
	default:
		return month == p.Month
	}
}

func quarterOf(month int) int {
	return int(math.Ceil(float64(month) / 3))
}

// StatusCounts tallies STAY and LEAVE within the period for the given sales
// subset. PENDING evaluations count in neither bucket.
func StatusCounts(evaluations []kpi.Evaluation, sales []roster.SalesPerson, period Period) (stay, leave int) {
	ids := salesIDSet(sales)
	for _, ev := range evaluations {
		if !ids[ev.SalesID] || !period.Contains(ev.Month, ev.Year) {
			continue
		}
		switch ev.Status {
		case kpi.StatusStay:
			stay++
		case kpi.StatusLeave:
			leave++
		}
	}
	return stay, leave
}

// FullyRatedCount counts evaluations with all three rater latches set.
func FullyRatedCount(evaluations []kpi.Evaluation, sales []roster.SalesPerson, period Period) int {
	ids := salesIDSet(sales)
	count := 0
	for _, ev := range evaluations {
		if ids[ev.SalesID] && period.Contains(ev.Month, ev.Year) && ev.FullyRated() {
			count++
		}
	}
	return count
}

// Percent is rated/total scaled to 0-100 and rounded to the nearest whole
// number. An empty group yields 0, never a division error.
func Percent(rated, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(rated) / float64(total) * 100))
}

// ProgressRow is one group's rating progress for the dashboard bars.
type ProgressRow struct {
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Rated      int    `json:"rated"`
	Unrated    int    `json:"unrated"`
	Percentage int    `json:"percentage"`
}

// ProgressByPrinciple groups the sales subset by principle and reports how
// many of each group are fully rated within the period.
func ProgressByPrinciple(evaluations []kpi.Evaluation, sales []roster.SalesPerson, period Period) []ProgressRow {
	return progressBy(evaluations, sales, period, func(sp roster.SalesPerson) string { return sp.Principle })
}

// ProgressBySupervisor is the same breakdown keyed by supervisor name.
func ProgressBySupervisor(evaluations []kpi.Evaluation, sales []roster.SalesPerson, period Period) []ProgressRow {
	return progressBy(evaluations, sales, period, func(sp roster.SalesPerson) string { return sp.SupervisorName })
}

func progressBy(evaluations []kpi.Evaluation, sales []roster.SalesPerson, period Period, keyFn func(roster.SalesPerson) string) []ProgressRow {
	rated := make(map[string]bool)
	for _, ev := range evaluations {
		if ev.FullyRated() && period.Contains(ev.Month, ev.Year) {
			rated[ev.SalesID] = true
		}
	}

	var order []string
	groups := make(map[string]*ProgressRow)
	for _, sp := range sales {
		key := keyFn(sp)
		row, ok := groups[key]
		if !ok {
			row = &ProgressRow{Name: key}
			groups[key] = row
			order = append(order, key)
		}
		row.Total++
		if rated[sp.ID] {
			row.Rated++
		}
	}

	out := make([]ProgressRow, 0, len(order))
	for _, key := range order {
		row := groups[key]
		row.Unrated = row.Total - row.Rated
		row.Percentage = Percent(row.Rated, row.Total)
		out = append(out, *row)
	}
	return out
}

// TrendRow is one month's STAY/LEAVE tally.
type TrendRow struct {
	Month int `json:"month"`
	Stay  int `json:"stay"`
	Leave int `json:"leave"`
}

// MonthlyTrend tallies outcomes for each month of the year over the sales
// subset. Always returns twelve rows.
func MonthlyTrend(evaluations []kpi.Evaluation, sales []roster.SalesPerson, year int) []TrendRow {
	ids := salesIDSet(sales)
	rows := make([]TrendRow, 12)
	for i := range rows {
		rows[i].Month = i + 1
	}
	for _, ev := range evaluations {
		if !ids[ev.SalesID] || ev.Year != year || ev.Month < 1 || ev.Month > 12 {
			continue
		}
		switch ev.Status {
		case kpi.StatusStay:
			rows[ev.Month-1].Stay++
		case kpi.StatusLeave:
			rows[ev.Month-1].Leave++
		}
	}
	return rows
}

// Breakdown re-derives the per-section contributions of a stored evaluation
// under the configuration passed in. Dashboards call this with the current
// configuration, so the parts can drift from the frozen FinalScore after an
// admin retunes weights; that drift is intentional.
type Breakdown struct {
	Supervisor float64 `json:"supervisor"`
	Kasir      float64 `json:"kasir"`
	HRD        float64 `json:"hrd"`
}

func SectionBreakdown(ev kpi.Evaluation, cfg kpi.Configuration) Breakdown {
	return Breakdown{
		Supervisor: kpi.Round2(kpi.SectionScore(ev.Scores, cfg.Supervisor)),
		Kasir:      kpi.Round2(kpi.SectionScore(ev.Scores, cfg.Kasir)),
		HRD:        kpi.Round2(kpi.SectionScore(ev.Scores, cfg.HRD)),
	}
}

func salesIDSet(sales []roster.SalesPerson) map[string]bool {
	ids := make(map[string]bool, len(sales))
	for _, sp := range sales {
		ids[sp.ID] = true
	}
	return ids
}
