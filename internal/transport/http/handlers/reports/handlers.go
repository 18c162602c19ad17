package reportshandler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/reports"
	"salestrack/internal/transport/http/api"
	"salestrack/internal/transport/http/middleware"
	"salestrack/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(reportsSvc *reports.Service) *Handler {
	return &Handler{Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/summary", h.handleSummary)
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/progress", h.handleProgress)
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/trend", h.handleTrend)
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/breakdown", h.handleBreakdown)
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/monthly.pdf", h.handleMonthlyPDF)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	period := shared.ParsePeriod(r)
	sales := h.Reports.ScopedSales(user.Role, user.FullName)
	api.Success(w, h.Reports.Summary(sales, period), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	period := shared.ParsePeriod(r)
	sales := h.Reports.ScopedSales(user.Role, user.FullName)

	var rows []reports.ProgressRow
	if strings.EqualFold(r.URL.Query().Get("by"), "supervisor") {
		rows = h.Reports.ProgressBySupervisor(sales, period)
	} else {
		rows = h.Reports.ProgressByPrinciple(sales, period)
	}
	if rows == nil {
		rows = []reports.ProgressRow{}
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 2000 && v <= 2100 {
			year = v
		}
	}
	sales := h.Reports.ScopedSales(user.Role, user.FullName)
	api.Success(w, h.Reports.MonthlyTrend(sales, year), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	salesID := strings.TrimSpace(query.Get("salesId"))
	month, _ := strconv.Atoi(query.Get("month"))
	year, _ := strconv.Atoi(query.Get("year"))

	validator := shared.NewValidator()
	validator.Required("salesId", salesID, "sales id is required")
	validator.Month("month", month)
	if year < 2000 || year > 2100 {
		validator.Add("year", "must be a four digit year")
	}
	if validator.Reject(w, requestID) {
		return
	}

	breakdown, ok := h.Reports.Breakdown(salesID, month, year)
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "no evaluation for that period", requestID)
		return
	}
	api.Success(w, breakdown, requestID)
}

// handleMonthlyPDF renders the printable month report: the headline block
// plus one line per salesperson in scope.
func (h *Handler) handleMonthlyPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	period := shared.ParsePeriod(r)
	period.Mode = reports.PeriodMonth

	sales := h.Reports.ScopedSales(user.Role, user.FullName)
	summary := h.Reports.Summary(sales, period)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly KPI Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %02d/%d", period.Month, period.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Salespeople: %d", summary.TotalSales))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Stay: %d   Leave: %d   Fully rated: %d (%d%%)",
		summary.StayCount, summary.LeaveCount, summary.FullyRated, summary.ProgressPct))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Salesperson")
	pdf.Cell(50, 7, "Principle")
	pdf.Cell(30, 7, "Final Score")
	pdf.Cell(30, 7, "Status")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)

	for _, sp := range sales {
		score := "-"
		status := "UNRATED"
		if ev, ok := h.Reports.Evaluation(sp.ID, period.Month, period.Year); ok {
			score = fmt.Sprintf("%.2f", ev.FinalScore)
			status = ev.Status
		}
		pdf.Cell(70, 7, sp.FullName)
		pdf.Cell(50, 7, sp.Principle)
		pdf.Cell(30, 7, score)
		pdf.Cell(30, 7, status)
		pdf.Ln(7)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=kpi-report-%d-%02d.pdf", period.Year, period.Month))
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render report", requestID)
	}
}
