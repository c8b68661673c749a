package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/entity"
	"github.com/limbo/flicks/pkg/httputil"
)

type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// writeError logs err with the handler's prefix and writes the matching
// error envelope. Server-side failures are logged at error level.
func writeError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	status, _ := httputil.StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
	} else {
		logger.Warn(prefix, slog.String("error", err.Error()))
	}
	httputil.WriteServiceError(w, err)
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return errorvalues.NewValidationError("invalid request body")
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.UUID{}, errorvalues.NewValidationError(name + ": must be a valid id")
	}
	return id, nil
}

func pathContentID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "contentId"))
	if err != nil || id < 1 {
		return 0, errorvalues.NewValidationError("contentId: must be a positive integer")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorvalues.NewValidationError(name + ": must be an integer")
	}
	return value, nil
}

// caller returns the authenticated identity. Routes behind AuthMiddleware
// always have one.
func caller(r *http.Request) entity.Identity {
	identity, _ := IdentityFromContext(r.Context())
	return identity
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwtService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("registering error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		writeError(w, logger, "registering error", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating session")
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteMessageResponse(w, http.StatusCreated, "User registered successfully", AuthResponse{User: user, Token: token})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Warn("login error: invalid body")
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, &req)
	if err != nil {
		writeError(w, logger, "login error", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating session")
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteMessageResponse(w, http.StatusOK, "Login successful", AuthResponse{User: user, Token: token})
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteMessageResponse(w, http.StatusOK, "Logout successful", nil)
	GetLoggerFromCtx(r.Context()).Info("logged out")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, caller(r).UserID)
	if err != nil {
		writeError(w, logger, "getting current user error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{User: user})
}

func (s *Server) Statistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, err := pathUUID(r, "userId")
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), statisticsTimeout)
	defer cancel()
	stats, err := s.statisticsService.ComputeStatistics(ctx, caller(r), userID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = errors.Join(errorvalues.ErrStoreUnavailable, err)
		}
		writeError(w, logger, "statistics error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("statistics provided")
}
