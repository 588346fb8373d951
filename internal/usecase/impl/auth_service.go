// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	gateway    service.MarketplaceGateway
	sessions   repository.SessionCache
	sessionTTL time.Duration
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Gateway  service.MarketplaceGateway
	Sessions repository.SessionCache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var ttl time.Duration
	if params.Config != nil && params.Config.Session != nil {
		ttl = params.Config.Session.TTL
	}

	return &authService{
		gateway:    params.Gateway,
		sessions:   params.Sessions,
		sessionTTL: ttl,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login forwards the credentials and caches the returned profile.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	session, err := srv.gateway.Login(ctx, service.LoginRequest{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	})
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log in")
	}

	return srv.startSession(ctx, session)
}

// Register signs up a customer or store owner. Admin accounts cannot be self-registered.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	accountType := entity.RoleCustomer
	if strings.TrimSpace(input.AccountType) != "" {
		role, ok := entity.ParseRole(input.AccountType)
		if !ok || role == entity.RoleAdmin {
			return nil, domainerrors.ErrValidationFailed.WithDetails("account_type must be customer or store_owner")
		}
		accountType = role
	}

	session, err := srv.gateway.Register(ctx, service.RegisterRequest{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Password:    input.Password,
		AccountType: accountType.String(),
	})
	if err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("Account registered", slog.String("account_type", accountType.String()))

	return srv.startSession(ctx, session)
}

func (srv *authService) startSession(ctx context.Context, session *entity.AuthSession) (*usecase.SessionOutput, error) {
	if session == nil || session.AccessToken == "" {
		return nil, domainerrors.ErrBackendUnavailable.WithDetails("backend returned no access token")
	}

	user := session.User
	if user == nil {
		var err error
		user, err = srv.gateway.CurrentUser(ctx, session.AccessToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load profile after sign-in")
		}
	}

	srv.cache(ctx, session.AccessToken, user, session.ExpiresIn)

	return &usecase.SessionOutput{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		Viewer:       usecase.NewViewer(user),
	}, nil
}

// Logout evicts the cached profile. The backend token itself stays valid until it expires.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := srv.sessions.Delete(ctx, token); err != nil {
		return errors.Wrap(err, "failed to evict session")
	}

	return nil
}

// CurrentViewer builds the viewer from the cached profile, loading it from the backend on a miss.
func (srv *authService) CurrentViewer(ctx context.Context, token string) (*usecase.Viewer, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.sessions.Get(ctx, token)
	if err == nil {
		return usecase.NewViewer(user), nil
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Warn("Session cache read failed", slog.Any("error", err))
	}

	user, err = srv.gateway.CurrentUser(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	srv.cache(ctx, token, user, 0)

	return usecase.NewViewer(user), nil
}

// cache stores the profile for at most the session TTL and never beyond the token lifetime.
// Cache failures are logged; the profile can always be refetched.
func (srv *authService) cache(ctx context.Context, token string, user *entity.User, expiresIn int) {
	ttl := srv.sessionTTL
	if expiresIn > 0 {
		if tokenTTL := time.Duration(expiresIn) * time.Second; ttl <= 0 || tokenTTL < ttl {
			ttl = tokenTTL
		}
	}
	if ttl <= 0 {
		return
	}

	if err := srv.sessions.Set(ctx, token, user, ttl); err != nil {
		srv.log(ctx).Warn("Failed to cache session profile", slog.String("user_id", user.ID), slog.Any("error", err))
	}
}
