package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		session, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

// GetMe devolve a sessão atual
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := domain.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Sign in to continue", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if errors.Is(authErr, authenticating.ErrInvalidCredentials) {
			log.ForContext(r.Context()).Warn("Tentativa de login com credenciais inválidas")
			apiErrors.WriteError(w, authErr.Code, "Invalid username or password", nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal error while signing in", nil)
}
