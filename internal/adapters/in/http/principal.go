package http

import (
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication. The service
// trusts them; it performs authorization, not authentication.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// principalFromRequest resolves the caller from the identity headers.
func principalFromRequest(ctx echo.Context) (principal.Principal, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return principal.Principal{}, errs.NewValueIsRequiredError(HeaderUserID)
	}

	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawRole == "" {
		return principal.Principal{}, errs.NewValueIsRequiredError(HeaderUserRole)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return principal.Principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}

	role, err := principal.RoleFromString(rawRole)
	if err != nil {
		return principal.Principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole, err)
	}

	return principal.NewPrincipal(id, role)
}
