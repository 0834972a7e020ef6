package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// GetTours handles GET /tours (public)
func (h *TourHandler) GetTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.TourListRequest{
		Page:        utils.ParseInt(query.Get("page"), 1),
		PerPage:     utils.ParseInt(query.Get("limit"), 10),
		Search:      query.Get("search"),
		Destination: query.Get("destination"),
	}

	// Inactive tours are only visible to admins who ask for them
	if query.Get("includeInactive") == "true" {
		role, _ := utils.GetRoleFromContext(r.Context())
		req.IncludeInactive = entity.Role(role).IsAdmin()
	}

	tours, err := h.service.GetTours(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetTourByID handles GET /tours/{id} (public)
func (h *TourHandler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")

	tour, err := h.service.GetTourByID(r.Context(), tourID)
	if err != nil {
		handleServiceError(w, h.log, err, "get tour by ID")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// CreateTour handles POST /tours (admin only)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created successfully", tour)
}

// UpdateTour handles PUT /tours/{id} (admin only)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")

	var req request.UpdateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated successfully", tour)
}

// DeleteTour handles DELETE /tours/{id} (admin only)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")

	if err := h.service.DeleteTour(r.Context(), tourID); err != nil {
		handleServiceError(w, h.log, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour deleted successfully", nil)
}
