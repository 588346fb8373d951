// Package handler contains the Pub/Sub push handlers of the notifier worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/notification"
	"bazaar/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// storeTopicPrefix prefixes the FCM topic every store's devices subscribe to.
const storeTopicPrefix = "store-"

// tokenValidator validates a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns marketplace events pushed by Pub/Sub into store notifications
type PushHandler struct {
	verifyPushAuth  bool
	audience        string
	validateToken   tokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	// Google push requests carry an OIDC token outside local development
	verifyPushAuth := pubsubCfg != nil &&
		pubsubCfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		audience:        audience,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed and permanently undeliverable messages are acknowledged with 200,
// transient failures return 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing marketplace event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("store_id", event.StoreID),
	)

	if err := h.notifyStore(ctx, event); err != nil {
		permanent := notification.IsPermanentSendError(err)
		reqLogger.Error("[Worker] Failed to notify store",
			slog.String("event_id", event.EventID),
			slog.Bool("retryable", !permanent),
			slog.Any("error", err),
		)
		if permanent {
			return c.NoContent(http.StatusOK)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Store notified", slog.String("event_id", event.EventID))

	return c.NoContent(http.StatusOK)
}

// decodeEvent unpacks the base64 payload of a push message.
func decodeEvent(pushMsg *pubsub.PushMessage) (*service.MarketplaceEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.MarketplaceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse marketplace event")
	}
	if event.StoreID == "" || event.Type == "" {
		return nil, errors.New("event has no store or type")
	}

	return &event, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.MarketplaceEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) notifyStore(ctx context.Context, event *service.MarketplaceEvent) error {
	title, body := notificationContent(event)

	data := map[string]string{
		"event_id":  event.EventID,
		"type":      event.Type,
		"entity_id": event.EntityID,
		"store_id":  event.StoreID,
	}
	for key, value := range event.Attributes {
		if _, taken := data[key]; !taken {
			data[key] = value
		}
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, storeTopicPrefix+event.StoreID, title, body, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// notificationContent renders the user-facing title and body of an event.
func notificationContent(event *service.MarketplaceEvent) (title, body string) {
	switch event.Type {
	case service.EventOrderStatusChanged:
		return "Order updated", fmt.Sprintf("Order %s moved from %s to %s",
			event.EntityID, event.Attributes["from"], event.Attributes["to"])
	case service.EventPartnershipRequested:
		return "New partnership request", "A producer store wants to partner with you"
	case service.EventPartnershipResponded:
		return "Partnership update", fmt.Sprintf("Your partnership request was answered: %s", event.Attributes["status"])
	default:
		return "Marketplace update", strings.ReplaceAll(event.Type, ".", " ")
	}
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
