package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

// AuthMiddleware valida o token Bearer quando presente e anexa a sessão ao contexto.
// Requisições sem Authorization seguem anônimas; as rotas protegidas usam RequireSession.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			session, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)
				if authenticating.IsTokenError(err) {
					logger.Warn("Token rejeitado")
				} else {
					logger.WithError(err).Error("Erro inesperado ao validar token")
				}
				apiErrors.WriteError(w, code, "Session is invalid or expired, please sign in again", nil)
				return
			}

			ctx := domain.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
