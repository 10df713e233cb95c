package accesscontrol

import (
	"context"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager/v3"

	"github.com/modelwatch/modelwatch/helpers/handlers"
	"github.com/modelwatch/modelwatch/models"
)

type contextKey string

const principalContextKey contextKey = "principal"

// PrincipalFromContext returns the authenticated Principal stored by
// the middleware, or nil when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) *Principal {
	principal, _ := ctx.Value(principalContextKey).(*Principal)
	return principal
}

type Middleware struct {
	logger        lager.Logger
	accessControl *AccessControl
}

func NewMiddleware(logger lager.Logger, accessControl *AccessControl) *Middleware {
	return &Middleware{
		logger:        logger.Session("accesscontrol-middleware"),
		accessControl: accessControl,
	}
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(auth) != 2 || !strings.EqualFold(auth[0], "Bearer") {
			handlers.WriteJSONResponse(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "Unauthorized",
				Message: "Bearer authorization is not used properly"})
			return
		}

		principal, err := m.accessControl.Authenticate(auth[1])
		if err != nil {
			m.logger.Info("authentication-failed", lager.Data{"error": err.Error()})
			handlers.WriteJSONResponse(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "Unauthorized",
				Message: "Invalid bearer token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalContextKey, principal)))
	})
}

// RequirePermission wraps a handler with a capability check on the
// authenticated principal.
func (m *Middleware) RequirePermission(permission Permission, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())
		if !m.accessControl.Authorize(principal, permission) {
			m.logger.Info("authorization-failed", lager.Data{"permission": permission})
			handlers.WriteJSONResponse(w, http.StatusForbidden, models.ErrorResponse{
				Code:    "Forbidden",
				Message: "Not enough permissions"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
