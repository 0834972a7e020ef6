package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireLike configures tour like routes
func wireLike(
	r chi.Router,
	likeHandler *adaptor.LikeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/likes", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT.Secret, log))

		r.Post("/{tourId}", likeHandler.LikeTour)
		r.Delete("/{tourId}", likeHandler.UnlikeTour)
		r.Get("/{tourId}", likeHandler.GetTourLikes)
		r.Get("/{tourId}/me", likeHandler.HasLiked)
	})
}
