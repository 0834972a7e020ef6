package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireExport configures admin export routes
func wireExport(
	r chi.Router,
	exportHandler *adaptor.ExportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/export", func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/users/csv", exportHandler.ExportUsersCSV)
		r.Get("/users/excel", exportHandler.ExportUsersExcel)
		r.Get("/tours/csv", exportHandler.ExportToursCSV)
		r.Get("/tours/excel", exportHandler.ExportToursExcel)
	})
}
