package http

import (
	"errors"
	"net/http"

	"citrustrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to HTTP status codes:
//   - validation errors become 400
//   - access denials become 403
//   - missing objects become 404
//   - code collisions that survived the retry become 409
//
// Everything else is a 500 with a generic message so that internals do not
// leak to clients.
func writeError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrCodeCollision):
		code = http.StatusConflict
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func writeUnauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}
