package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user profile and follow routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT.Secret, log))

		r.Get("/", userHandler.GetUsers)
		r.Get("/{id}", userHandler.GetUserByID)

		r.Post("/{id}/follow", userHandler.FollowUser)
		r.Delete("/{id}/follow", userHandler.UnfollowUser)
		r.Get("/{id}/followers", userHandler.GetFollowers)
		r.Get("/{id}/following", userHandler.GetFollowing)
	})
}
