package adaptor

import (
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users (protected)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{Page: utils.ParseInt(query.Get("page"), 1)}
	search := query.Get("search")

	users, err := h.service.GetUsers(r.Context(), search, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUserByID handles GET /users/{id} (protected)
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user by ID")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// FollowUser handles POST /users/{id}/follow (protected)
func (h *UserHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	currentUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "id")

	follow, err := h.service.FollowUser(r.Context(), currentUserID, targetID)
	if err != nil {
		handleServiceError(w, h.log, err, "follow user")
		return
	}

	utils.ResponseCreated(w, "User followed successfully", follow)
}

// UnfollowUser handles DELETE /users/{id}/follow (protected)
func (h *UserHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	currentUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "id")

	if err := h.service.UnfollowUser(r.Context(), currentUserID, targetID); err != nil {
		handleServiceError(w, h.log, err, "unfollow user")
		return
	}

	utils.ResponseSuccess(w, "User unfollowed successfully", nil)
}

// GetFollowers handles GET /users/{id}/followers (protected)
func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	page := &request.PaginatedRequest{Page: utils.ParseInt(r.URL.Query().Get("page"), 1)}

	followers, err := h.service.GetFollowers(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get followers")
		return
	}

	utils.ResponseSuccess(w, "success", followers)
}

// GetFollowing handles GET /users/{id}/following (protected)
func (h *UserHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	page := &request.PaginatedRequest{Page: utils.ParseInt(r.URL.Query().Get("page"), 1)}

	following, err := h.service.GetFollowing(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get following")
		return
	}

	utils.ResponseSuccess(w, "success", following)
}
