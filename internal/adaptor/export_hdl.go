package adaptor

import (
	"context"
	"fmt"
	"net/http"

	"tour-booking/internal/usecase"

	"go.uber.org/zap"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	service usecase.ExportService
	log     *zap.Logger
}

func NewExportHandler(service usecase.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		log:     log.With(zap.String("handler", "export")),
	}
}

func (h *ExportHandler) serveFile(w http.ResponseWriter, r *http.Request, filename, contentType, operation string, render func(context.Context) ([]byte, error)) {
	data, err := render(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("write export payload", zap.Error(err))
	}
}

// ExportUsersCSV handles GET /export/users/csv (admin only)
func (h *ExportHandler) ExportUsersCSV(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, "users.csv", contentTypeCSV, "export users csv", h.service.UsersCSV)
}

// ExportUsersExcel handles GET /export/users/excel (admin only)
func (h *ExportHandler) ExportUsersExcel(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, "users.xlsx", contentTypeXLSX, "export users excel", h.service.UsersExcel)
}

// ExportToursCSV handles GET /export/tours/csv (admin only)
func (h *ExportHandler) ExportToursCSV(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, "tours.csv", contentTypeCSV, "export tours csv", h.service.ToursCSV)
}

// ExportToursExcel handles GET /export/tours/excel (admin only)
func (h *ExportHandler) ExportToursExcel(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, "tours.xlsx", contentTypeXLSX, "export tours excel", h.service.ToursExcel)
}
