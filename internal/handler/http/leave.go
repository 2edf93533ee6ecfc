package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler. Accepts a multipart form with a JSON
// 'data' field and an optional 'attachment' file.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.UserID = userID

	resp, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "user_id", userID, "leave_id", resp.ID)
	response.Created(w, "Leave request submitted", resp)
}

// GetMyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.GetMyLeaves(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListLeaves implements LeaveHandler. Admin only.
func (h *LeaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	leaves, err := h.leaveService.ListLeaves(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	id := chi.URLParam(r, "id")

	approverID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var resp leave.LeaveResponse
	if approve {
		resp, err = h.leaveService.Approve(r.Context(), id, approverID)
	} else {
		resp, err = h.leaveService.Reject(r.Context(), id, approverID)
	}
	if err != nil {
		slog.Error("Decide leave service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "leave_id", id, "status", resp.Status, "approver_id", approverID)
	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}

// Approve implements LeaveHandler. Admin only.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements LeaveHandler. Admin only.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

// GetStats implements LeaveHandler.
func (h *LeaveHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	var userID *string
	if v := r.URL.Query().Get("user_id"); v != "" {
		userID = &v
	}

	stats, err := h.leaveService.GetStats(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
