package adaptor

import (
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LikeHandler struct {
	service usecase.LikeService
	log     *zap.Logger
}

func NewLikeHandler(service usecase.LikeService, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		service: service,
		log:     log.With(zap.String("handler", "like")),
	}
}

// LikeTour handles POST /likes/{tourId} (protected)
func (h *LikeHandler) LikeTour(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tourID := chi.URLParam(r, "tourId")

	like, err := h.service.LikeTour(r.Context(), userID, tourID)
	if err != nil {
		handleServiceError(w, h.log, err, "like tour")
		return
	}

	utils.ResponseCreated(w, "Tour liked successfully", like)
}

// UnlikeTour handles DELETE /likes/{tourId} (protected)
func (h *LikeHandler) UnlikeTour(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tourID := chi.URLParam(r, "tourId")

	if err := h.service.UnlikeTour(r.Context(), userID, tourID); err != nil {
		handleServiceError(w, h.log, err, "unlike tour")
		return
	}

	utils.ResponseSuccess(w, "Tour unliked successfully", nil)
}

// GetTourLikes handles GET /likes/{tourId} (protected)
func (h *LikeHandler) GetTourLikes(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "tourId")
	page := &request.PaginatedRequest{Page: utils.ParseInt(r.URL.Query().Get("page"), 1)}

	likes, err := h.service.GetTourLikes(r.Context(), tourID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get tour likes")
		return
	}

	utils.ResponseSuccess(w, "success", likes)
}

// HasLiked handles GET /likes/{tourId}/me (protected)
func (h *LikeHandler) HasLiked(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tourID := chi.URLParam(r, "tourId")

	liked, err := h.service.HasLiked(r.Context(), userID, tourID)
	if err != nil {
		handleServiceError(w, h.log, err, "check tour like")
		return
	}

	utils.ResponseSuccess(w, "success", liked)
}
