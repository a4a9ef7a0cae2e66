package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

// RequireSession bloqueia a rota quando a requisição não tem sessão válida
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := domain.SessionFromContext(r.Context()); !ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Sign in to continue", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
