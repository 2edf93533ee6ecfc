package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OfficeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OfficeHandlerImpl struct {
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService) OfficeHandler {
	return &OfficeHandlerImpl{officeService: officeService}
}

// Create implements OfficeHandler.
func (h *OfficeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.officeService.CreateOffice(r.Context(), req)
	if err != nil {
		slog.Error("Create office service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Office created", "office_id", resp.ID, "name", resp.Name)
	response.Created(w, "Office created", resp)
}

// Get implements OfficeHandler.
func (h *OfficeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.officeService.GetOffice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements OfficeHandler.
func (h *OfficeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeService.ListOffices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, offices)
}

// Update implements OfficeHandler.
func (h *OfficeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.officeService.UpdateOffice(r.Context(), req)
	if err != nil {
		slog.Error("Update office service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated", resp)
}

// Delete implements OfficeHandler.
func (h *OfficeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.officeService.DeleteOffice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Office deleted", "office_id", id)
	response.SuccessWithMessage(w, "Office deleted", nil)
}
