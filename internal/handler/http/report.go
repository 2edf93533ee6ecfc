package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/report"
	"github.com/dpkp-bogor/presensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func reportRequestFromQuery(r *http.Request) report.MonthlyAttendanceReportRequest {
	q := r.URL.Query()

	var req report.MonthlyAttendanceReportRequest
	req.Month, _ = strconv.Atoi(q.Get("month"))
	req.Year, _ = strconv.Atoi(q.Get("year"))
	if v := q.Get("user_id"); v != "" {
		req.UserID = &v
	}
	return req
}

// MonthlyAttendance implements ReportHandler. Admin only.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GenerateMonthlyAttendanceReport(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ExportAttendanceCSV implements ReportHandler. Admin only.
func (h *ReportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	data, err := h.reportService.ExportAttendanceCSV(r.Context(), req)
	if err != nil {
		slog.Error("CSV export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.csv", req.Year, req.Month)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
