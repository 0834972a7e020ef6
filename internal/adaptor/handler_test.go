package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", usecase.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: numberOfPersons must be positive", usecase.ErrValidation), http.StatusBadRequest},
		{"self follow", usecase.ErrSelfFollow, http.StatusBadRequest},
		{"insufficient spots", usecase.ErrInsufficientSpots, http.StatusBadRequest},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", usecase.ErrUserNotFound, http.StatusNotFound},
		{"tour not found", usecase.ErrTourNotFound, http.StatusNotFound},
		{"booking not found", usecase.ErrBookingNotFound, http.StatusNotFound},
		{"email taken", usecase.ErrEmailTaken, http.StatusConflict},
		{"already liked", usecase.ErrAlreadyLiked, http.StatusConflict},
		{"already following", usecase.ErrAlreadyFollowing, http.StatusConflict},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tc.err, "test operation")
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
