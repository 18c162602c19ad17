package shared

import (
	"net/http"
	"sort"
	"strings"

	"salestrack/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) Enum(field, value string, allowed []string, reason string) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return
	}
	for _, candidate := range allowed {
		if normalized == strings.ToUpper(strings.TrimSpace(candidate)) {
			return
		}
	}
	v.Add(field, reason)
}

// Month validates a 1-12 month number.
func (v *Validator) Month(field string, month int) {
	if month < 1 || month > 12 {
		v.Add(field, "must be between 1 and 12")
	}
}

// Score validates a rating on the 0-100 scale.
func (v *Validator) Score(field string, value float64) {
	if value < 0 || value > 100 {
		v.Add(field, "must be between 0 and 100")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
