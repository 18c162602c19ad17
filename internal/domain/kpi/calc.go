package kpi

import (
	"math"
	"strconv"
)

// StayThreshold is the inclusive cutoff a fully rated evaluation must reach
// to keep its salesperson on the team. Fixed, not configurable.
const StayThreshold = 75.0

// SectionRaw is the weighted sum of the section's criterion ratings. A
// criterion missing from scores contributes 0; it is not skipped, so an
// incomplete section drags the raw value toward 0 instead of being excluded.
func SectionRaw(scores ScoreData, section Section) float64 {
	raw := 0.0
	for _, criterion := range section.Criteria {
		raw += scores[criterion.Key] * criterion.Weight
	}
	return raw
}

// SectionScore scales the section's raw value by its share of the overall
// 100-point score.
func SectionScore(scores ScoreData, section Section) float64 {
	return SectionRaw(scores, section) * section.TotalWeight
}

// Total is the unrounded weighted sum across all three sections. Status
// derivation compares this value against StayThreshold; Round2 is applied
// separately for storage and display.
func Total(scores ScoreData, cfg Configuration) float64 {
	total := 0.0
	for _, section := range cfg.Sections() {
		total += SectionScore(scores, section)
	}
	return total
}

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// SectionComplete reports whether every configured criterion of the section
// has a rating present in scores. A rating of 0 counts as present; only an
// absent key makes the section incomplete.
func SectionComplete(scores ScoreData, section Section) Completion {
	for _, criterion := range section.Criteria {
		if _, ok := scores[criterion.Key]; !ok {
			return false
		}
	}
	return true
}

// StatusFor derives the tri-state outcome. Any unrated section keeps the
// evaluation PENDING regardless of the numeric total.
func StatusFor(total float64, supervisorRated, kasirRated, hrdRated Completion) string {
	if !(supervisorRated && kasirRated && hrdRated) {
		return StatusPending
	}
	if total >= StayThreshold {
		return StatusStay
	}
	return StatusLeave
}

// Evaluate merges patch into the existing evaluation (nil for a first
// submission) and recomputes every derived field with the given
// configuration. Rated latches only move toward true.
func Evaluate(existing *Evaluation, key Key, patch ScoreData, cfg Configuration) Evaluation {
	merged := patch.Clone()
	supervisorRated := Completion(false)
	kasirRated := Completion(false)
	hrdRated := Completion(false)
	if existing != nil {
		merged = existing.Scores.Merge(patch)
		supervisorRated = existing.SupervisorRated
		kasirRated = existing.KasirRated
		hrdRated = existing.HRDRated
	}

	total := Total(merged, cfg)
	supervisorRated = supervisorRated.Or(SectionComplete(merged, cfg.Supervisor))
	kasirRated = kasirRated.Or(SectionComplete(merged, cfg.Kasir))
	hrdRated = hrdRated.Or(SectionComplete(merged, cfg.HRD))

	return Evaluation{
		SalesID:         key.SalesID,
		Year:            key.Year,
		Month:           key.Month,
		Scores:          merged,
		SupervisorRated: supervisorRated,
		KasirRated:      kasirRated,
		HRDRated:        hrdRated,
		FinalScore:      Round2(total),
		Status:          StatusFor(total, supervisorRated, kasirRated, hrdRated),
	}
}

func nearlyOne(sum float64) bool {
	return math.Abs(sum-1.0) < 0.001
}

func formatWeight(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
