package middleware

import (
	"log/slog"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyActor = "actor"

	// HeaderAdminKey carries the break-glass operator key.
	HeaderAdminKey = "X-Admin-Key"

	// BreakGlassActorID identifies activity reads made with the operator key.
	BreakGlassActorID = "break-glass"
)

// AuthMiddleware validates backend-issued access tokens and gates UI surfaces by role.
// It is never the security boundary: the backend re-authorizes every forwarded call.
type AuthMiddleware struct {
	tokenSvc       service.TokenService
	hasher         service.SecretHasher
	breakGlassHash string
	logger         *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Hasher       service.SecretHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	var hash string
	if params.Config != nil && params.Config.Admin != nil {
		hash = params.Config.Admin.BreakGlassKeyHash
	}

	return &AuthMiddleware{
		tokenSvc:       params.TokenService,
		hasher:         params.Hasher,
		breakGlassHash: hash,
		logger:         params.Logger,
	}
}

// Authenticate requires a valid bearer token and stores the resolved actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WrapMessage("missing bearer token")
		}

		if err := m.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate resolves the actor when a token is present and lets anonymous callers through.
// A present but invalid token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			setActor(c, usecase.Actor{Role: entity.RoleCustomer, IP: c.RealIP(), UserAgent: c.Request().UserAgent()})

			return next(c)
		}

		if err := m.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string) error {
	claims, err := m.tokenSvc.ValidateAccessToken(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Rejected access token", slog.Any("error", err))

		return domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
	}

	setActor(c, usecase.Actor{
		UserID:    claims.UserID,
		Role:      entity.ResolveRole(claims.UserType, claims.HasStore || claims.StoreID != ""),
		StoreID:   claims.StoreID,
		Token:     token,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})

	return nil
}

// RequireRole offers the route only to the given role. Admins pass every role check.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok || actor.UserID == "" {
				return domainerrors.ErrUnauthorized
			}
			if actor.Role != role && actor.Role != entity.RoleAdmin {
				return domainerrors.ErrForbidden.WrapMessage("requires role " + role.String())
			}

			return next(c)
		}
	}
}

// RequirePermission offers the route only to roles granted the permission.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(permission entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok || actor.UserID == "" {
				return domainerrors.ErrUnauthorized
			}
			if !actor.Role.Can(permission) {
				return domainerrors.ErrForbidden.WrapMessage("requires permission " + string(permission))
			}

			return next(c)
		}
	}
}

// AdminOrBreakGlass lets an operator in with the X-Admin-Key header, otherwise it requires an admin token.
// A key is only honoured when a hash is configured.
func (m *AuthMiddleware) AdminOrBreakGlass(next echo.HandlerFunc) echo.HandlerFunc {
	requireAdmin := m.Authenticate(m.RequireRole(entity.RoleAdmin)(next))

	return func(c echo.Context) error {
		key := c.Request().Header.Get(HeaderAdminKey)
		if key == "" {
			return requireAdmin(c)
		}

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		if m.breakGlassHash == "" || !m.hasher.Check(key, m.breakGlassHash) {
			logger.Warn("Rejected break-glass key", slog.String("remote_ip", c.RealIP()))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid admin key")
		}

		logger.Info("Break-glass access", slog.String("remote_ip", c.RealIP()), slog.String("path", c.Request().URL.Path))
		setActor(c, usecase.Actor{
			UserID:    BreakGlassActorID,
			Role:      entity.RoleAdmin,
			IP:        c.RealIP(),
			UserAgent: c.Request().UserAgent(),
		})

		return next(c)
	}
}

// GetActor returns the actor resolved by the auth middleware.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(contextKeyActor).(usecase.Actor)

	return actor, ok
}

// GetToken returns the raw bearer token of the request, if authenticated.
func GetToken(c echo.Context) string {
	actor, _ := GetActor(c)

	return actor.Token
}

func setActor(c echo.Context, actor usecase.Actor) {
	c.Set(contextKeyActor, actor)
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])

	return token, token != ""
}
