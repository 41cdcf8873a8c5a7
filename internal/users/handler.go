package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/middleware"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, params RegisterParams) (*User, *auth.LoginSession, error)
	Login(ctx context.Context, creds Credentials) (*User, *auth.LoginSession, error)
	Logout(ctx context.Context, token string) (bool, error)
	Profile(ctx context.Context, userID int) (*User, error)
	UpdateProfile(ctx context.Context, userID int, patch UserPatch) (*User, error)
	ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) error
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

type ProfileResponse struct {
	User *User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service        usersService
	sessionTTL     time.Duration
	metricsManager *metrics.Manager
}

func NewHandler(service usersService, sessionTTL time.Duration, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		sessionTTL:     sessionTTL,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/profile", handler.HandleProfile).Methods("GET", "OPTIONS").Name("profile")
	authRouter.HandleFunc("/profile", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	authRouter.HandleFunc("/change-password", handler.HandleChangePassword).Methods("POST", "OPTIONS").Name("change-password")

	// rate limit the /login and /register endpoints to prevent abuse
	limited := authRouter.NewRoute().Subrouter()
	limited.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	limited.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	if rateLimiter != nil {
		limited.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin, handler.metricsManager))
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var params RegisterParams
	if !decodeJSON(w, r, &params) {
		return
	}

	user, session, err := handler.service.Register(ctx, params)
	if err != nil {
		span.SetStatus(codes.Error, "register failed")
		gymstats.WriteError(w, err, "register")
		return
	}

	pkg.WriteJSON(w, handler.authResponse(user, session), http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var creds Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	user, session, err := handler.service.Login(ctx, creds)
	if err != nil {
		span.SetStatus(codes.Error, "login failed")
		if errors.Is(err, ErrInvalidCredentials) {
			handler.countLogin("invalid")
			pkg.WriteJSONError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		handler.countLogin("error")
		gymstats.WriteError(w, err, "login")
		return
	}

	handler.countLogin("success")
	log.Tracef("new login success: %d", user.ID)
	pkg.WriteJSON(w, handler.authResponse(user, session), http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := auth.BearerToken(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "logged-out"}, http.StatusOK)
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	user, err := handler.service.Profile(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "get profile")
		return
	}
	pkg.WriteJSON(w, ProfileResponse{User: user}, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update_profile")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var patch UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	user, err := handler.service.UpdateProfile(ctx, userID, patch)
	if err != nil {
		gymstats.WriteError(w, err, "update profile")
		return
	}
	pkg.WriteJSON(w, ProfileResponse{User: user}, http.StatusOK)
}

func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.change_password")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := handler.service.ChangePassword(ctx, userID, req); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			pkg.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		gymstats.WriteError(w, err, "change password")
		return
	}
	pkg.WriteJSON(w, MessageResponse{Message: "password changed"}, http.StatusOK)
}

func (handler *Handler) authResponse(user *User, session *auth.LoginSession) AuthResponse {
	return AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.CreatedAt.Add(handler.sessionTTL),
		User:      user,
	}
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !gymstats.IsJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
