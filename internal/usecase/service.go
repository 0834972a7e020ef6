package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Tour    TourService
	Booking BookingService
	Like    LikeService
	Export  ExportService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, notifier, log),
		Tour:    NewTourService(repo, log),
		Booking: NewBookingService(repo, log),
		Like:    NewLikeService(repo, log),
		Export:  NewExportService(repo, log),
	}
}
