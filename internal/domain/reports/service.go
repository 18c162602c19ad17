package reports

import (
	"strings"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
)

// Service answers dashboard queries. Every method is a pure scan over the
// in-memory stores; nothing here mutates state.
type Service struct {
	evaluations *kpi.Store
	roster      *roster.Store
	config      *kpi.ConfigStore
}

func NewService(evaluations *kpi.Store, rosterStore *roster.Store, config *kpi.ConfigStore) *Service {
	return &Service{evaluations: evaluations, roster: rosterStore, config: config}
}

// Summary is the dashboard headline block.
type Summary struct {
	TotalSales  int `json:"totalSales"`
	StayCount   int `json:"stayCount"`
	LeaveCount  int `json:"leaveCount"`
	FullyRated  int `json:"fullyRated"`
	ProgressPct int `json:"progressPct"`
}

func (s *Service) Summary(sales []roster.SalesPerson, period Period) Summary {
	evals := s.evaluations.List()
	stay, leave := StatusCounts(evals, sales, period)
	rated := FullyRatedCount(evals, sales, period)
	return Summary{
		TotalSales:  len(sales),
		StayCount:   stay,
		LeaveCount:  leave,
		FullyRated:  rated,
		ProgressPct: Percent(rated, len(sales)),
	}
}

func (s *Service) ProgressByPrinciple(sales []roster.SalesPerson, period Period) []ProgressRow {
	return ProgressByPrinciple(s.evaluations.List(), sales, period)
}

func (s *Service) ProgressBySupervisor(sales []roster.SalesPerson, period Period) []ProgressRow {
	return ProgressBySupervisor(s.evaluations.List(), sales, period)
}

func (s *Service) MonthlyTrend(sales []roster.SalesPerson, year int) []TrendRow {
	return MonthlyTrend(s.evaluations.List(), sales, year)
}

// Evaluation exposes a single stored evaluation for report rendering.
func (s *Service) Evaluation(salesID string, month, year int) (kpi.Evaluation, bool) {
	return s.evaluations.Find(salesID, month, year)
}

// Breakdown returns the per-section display figures for one evaluation
// under the configuration currently in effect.
func (s *Service) Breakdown(salesID string, month, year int) (Breakdown, bool) {
	ev, ok := s.evaluations.Find(salesID, month, year)
	if !ok {
		return Breakdown{}, false
	}
	return SectionBreakdown(ev, s.config.Get()), true
}

// ScopedSales narrows the roster to what the actor may see: supervisors get
// their own team, everyone else the full roster.
func (s *Service) ScopedSales(role, supervisorName string) []roster.SalesPerson {
	all := s.roster.ListSales()
	if role != auth.RoleSupervisor {
		return all
	}
	var team []roster.SalesPerson
	for _, sp := range all {
		if strings.EqualFold(sp.SupervisorName, supervisorName) {
			team = append(team, sp)
		}
	}
	return team
}
