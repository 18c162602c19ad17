package shared

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"salestrack/internal/domain/reports"
)

// ParsePeriod reads the month, year and mode query parameters, defaulting
// to the current calendar month. Bad values fall back to the defaults
// rather than failing the request; the dashboard always has a period.
func ParsePeriod(r *http.Request) reports.Period {
	now := time.Now()
	period := reports.Period{
		Mode:  reports.PeriodMonth,
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= 12 {
			period.Month = v
		}
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 2000 && v <= 2100 {
			period.Year = v
		}
	}
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("mode"))) {
	case "quarter":
		period.Mode = reports.PeriodQuarter
	case "year":
		period.Mode = reports.PeriodYear
	}

	return period
}
