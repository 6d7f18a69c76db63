package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api/shared"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/config"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/platform/logger"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service/auth"
)

// AuthHandler serves the admin login endpoint. The playground has a
// single admin identity whose bcrypt password hash lives in the
// configuration; a successful login yields a short-lived access token
// for the destructive gallery operations.
type AuthHandler struct {
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authConfig       config.AuthConfig
	validate         *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig config.AuthConfig,
	baseLogger *slog.Logger,
) *AuthHandler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return &AuthHandler{
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
		validate:         validator.New(),
		logger:           baseLogger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Password is required", err)
		return
	}

	if err := h.passwordVerifier.Compare(h.authConfig.AdminPasswordHash, req.Password); err != nil {
		// Wrong password and malformed hash look the same to the
		// client; the log carries the distinction.
		log.WarnContext(ctx, "admin login rejected", slog.String("remote_addr", r.RemoteAddr))
		HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
		return
	}

	token, err := h.jwtService.GenerateToken(ctx)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to issue token")
		return
	}

	log.InfoContext(ctx, "admin login succeeded")
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{AccessToken: token})
}
