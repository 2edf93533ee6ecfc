package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	CheckGeofence(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// parseClockRequest reads the multipart form shared by clock-in and
// clock-out: a JSON 'data' field plus a 'photo' file. The caller owns
// closing the returned file via req.File.
func parseClockRequest(w http.ResponseWriter, r *http.Request) (attendance.ClockRequest, bool) {
	var req attendance.ClockRequest

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return req, false
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return req, false
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance selfie photo is required", nil)
			return req, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return req, false
	}

	req.File = file
	req.FileHeader = fileHeader

	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return req, false
	}
	req.UserID = userID

	return req, true
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := parseClockRequest(w, r)
	if !ok {
		return
	}
	defer req.File.Close()

	resp, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User clocked in", "user_id", req.UserID, "date", resp.Date)
	response.Created(w, "Clocked in successfully", resp)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := parseClockRequest(w, r)
	if !ok {
		return
	}
	defer req.File.Close()

	resp, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User clocked out", "user_id", req.UserID, "date", resp.Date)
	response.SuccessWithMessage(w, "Clocked out successfully", resp)
}

// CheckGeofence implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckGeofence(w http.ResponseWriter, r *http.Request) {
	var req attendance.GeofenceCheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.CheckGeofence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func historyFilterFromQuery(r *http.Request) attendance.HistoryFilter {
	var filter attendance.HistoryFilter
	q := r.URL.Query()

	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	list, err := h.attendanceService.GetMyAttendance(r.Context(), userID, historyFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Attendances, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: totalPages(list.TotalCount, list.Limit),
	})
}

// GetMyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	var startDate, endDate *string
	if v := q.Get("start_date"); v != "" {
		startDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		endDate = &v
	}

	stats, err := h.attendanceService.GetStats(r.Context(), &userID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// ListAttendance implements AttendanceHandler. Admin only.
func (h *AttendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	var filter attendance.Filter
	q := r.URL.Query()

	if v := q.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := q.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	list, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Attendances, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: totalPages(list.TotalCount, list.Limit),
	})
}

// GetStats implements AttendanceHandler. Admin only; aggregates all users
// unless user_id narrows it.
func (h *AttendanceHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var userID, startDate, endDate *string
	if v := q.Get("user_id"); v != "" {
		userID = &v
	}
	if v := q.Get("start_date"); v != "" {
		startDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		endDate = &v
	}

	stats, err := h.attendanceService.GetStats(r.Context(), userID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// DeleteAttendance implements AttendanceHandler. Admin only.
func (h *AttendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record deleted", "id", id)
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
