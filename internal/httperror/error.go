package httperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/envelope-zero/ledger/pkg/models"
)

type Error struct {
	Message string `json:"error" example:"not found: account with id \"65392deb-5e92-4268-b114-297faad6cdce\""`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status for an error returned by the ledger.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrStorage):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}
