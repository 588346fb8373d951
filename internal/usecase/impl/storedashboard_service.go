package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// brandingExtensions maps sniffed content types to the extension used in object keys.
var brandingExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// storeDashboardService implements the StoreDashboardUsecase interface.
type storeDashboardService struct {
	txManager     repository.TransactionManager
	gateway       service.MarketplaceGateway
	storage       service.ObjectStorage
	publisher     service.EventPublisher
	maxUploadSize int64
	now           func() time.Time
	logger        *slog.Logger
}

// StoreDashboardServiceParams holds dependencies for StoreDashboardService, injected by Fx.
type StoreDashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.MarketplaceGateway
	Storage   service.ObjectStorage
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreDashboardService is the constructor for storeDashboardService.
func NewStoreDashboardService(params StoreDashboardServiceParams) usecase.StoreDashboardUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &storeDashboardService{
		txManager:     params.TxManager,
		gateway:       params.Gateway,
		storage:       params.Storage,
		publisher:     params.Publisher,
		maxUploadSize: maxUploadSize,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeDashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadBranding validates an image, stores it, attaches it to the store and records the upload.
// The blob is removed again when the backend refuses the attachment.
func (srv *storeDashboardService) UploadBranding(ctx context.Context, input usecase.UploadBrandingInput) (*usecase.UploadBrandingOutput, error) {
	actor := input.Actor
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be logo, banner or gallery")
	}
	if input.Body == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	data, contentType, err := srv.readImage(input)
	if err != nil {
		srv.log(ctx).Warn("Rejected branding upload",
			slog.String("store_id", actor.StoreID),
			slog.String("filename", input.Filename),
			slog.Any("error", err))

		return nil, err
	}

	key := fmt.Sprintf("stores/%s/%s/%s%s", actor.StoreID, input.Kind, uuid.NewString(), brandingExtensions[contentType])
	publicURL, err := srv.storage.Put(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store branding image", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store branding image")
	}

	store, err := srv.gateway.AttachStoreImage(ctx, actor.Token, actor.StoreID, service.StoreImageRequest{
		Kind: input.Kind,
		URL:  publicURL,
	})
	if err != nil {
		srv.log(ctx).Warn("Backend refused branding image, removing blob", slog.String("key", key), slog.Any("error", err))
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned branding image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to attach branding image")
	}

	image := &entity.StoreImage{
		StoreID:     actor.StoreID,
		Kind:        input.Kind,
		ObjectKey:   key,
		URL:         publicURL,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedBy:  actor.UserID,
		CreatedAt:   srv.now(),
	}
	activity := srv.newActivity(actor, entity.ActionBrandingUploaded, "store", actor.StoreID, map[string]any{
		"kind":       string(input.Kind),
		"object_key": key,
		"size":       image.Size,
	})

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StoreImageRepo().Create(ctx, image); err != nil {
			return errors.Wrap(err, "failed to record store image")
		}
		if err := repoFactory.ActivityRepo().Create(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record activity")
		}

		return nil
	})
	if err != nil {
		// The backend already references the blob, so it must stay.
		srv.log(ctx).Error("Failed to record branding upload", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Branding image uploaded",
		slog.String("store_id", actor.StoreID),
		slog.String("kind", string(input.Kind)),
		slog.String("size", util.FormatBytes(image.Size)))

	return &usecase.UploadBrandingOutput{Store: store, Image: image}, nil
}

// readImage reads at most maxUploadSize bytes and sniffs the content type.
func (srv *storeDashboardService) readImage(input usecase.UploadBrandingInput) ([]byte, string, error) {
	limit := srv.maxUploadSize
	tooLarge := domainerrors.ErrUploadTooLarge.WithDetails("limit is " + util.FormatBytes(limit))
	if limit > 0 && input.Size > limit {
		return nil, "", tooLarge
	}

	reader := input.Body
	if limit > 0 {
		reader = io.LimitReader(input.Body, limit+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read upload")
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, "", tooLarge
	}
	if len(data) == 0 {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	contentType := http.DetectContentType(data)
	if _, ok := brandingExtensions[contentType]; !ok {
		return nil, "", domainerrors.ErrUnsupportedMediaType.WithDetails("detected " + contentType)
	}

	return data, contentType, nil
}

// ListBranding returns the branding uploads recorded for the actor's store, newest first.
func (srv *storeDashboardService) ListBranding(ctx context.Context, actor usecase.Actor) ([]*entity.StoreImage, error) {
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}

	var images []*entity.StoreImage
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		images, err = repoFactory.StoreImageRepo().ListByStore(ctx, actor.StoreID)

		return errors.Wrap(err, "failed to list store images")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list branding", slog.String("store_id", actor.StoreID), slog.Any("error", err))

		return nil, err
	}

	if images == nil {
		images = []*entity.StoreImage{}
	}

	return images, nil
}

// ListStoreOrders lists the orders placed with the actor's store.
func (srv *storeDashboardService) ListStoreOrders(ctx context.Context, actor usecase.Actor, filter entity.OrderFilter) (*entity.OrderPage, error) {
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}

	filter.StoreID = actor.StoreID
	filter, err := normalizeOrderFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := srv.gateway.ListOrders(ctx, actor.Token, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store orders")
	}

	return withPageSize(page, filter), nil
}

// UpdateOrderStatus asks the backend to move an order. The local transition table is only advisory.
func (srv *storeDashboardService) UpdateOrderStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	actor := input.Actor
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(input.Status))
	}

	current, err := srv.gateway.GetOrder(ctx, actor.Token, input.OrderID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("backend has no such order")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	if !current.Status.CanTransitionTo(input.Status) {
		srv.log(ctx).Warn("Order transition not offered by the dashboard, deferring to backend",
			slog.String("order_id", input.OrderID),
			slog.String("from", string(current.Status)),
			slog.String("to", string(input.Status)))
	}

	updated, err := srv.gateway.UpdateOrderStatus(ctx, actor.Token, input.OrderID, input.Status)
	if errors.Is(err, domainerrors.ErrConflict) {
		return nil, domainerrors.ErrInvalidOrderTransition.WrapMessage(err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	storeID := updated.StoreID
	if storeID == "" {
		storeID = actor.StoreID
	}
	attrs := map[string]string{
		"from": string(current.Status),
		"to":   string(updated.Status),
	}

	srv.publish(ctx, actor, service.EventOrderStatusChanged, storeID, updated.ID, attrs)
	srv.record(ctx, srv.newActivity(actor, entity.ActionOrderStatusChanged, "order", updated.ID, map[string]any{
		"from": string(current.Status),
		"to":   string(updated.Status),
	}))

	return updated, nil
}

// ListPartnerships lists partnerships involving the actor's store.
func (srv *storeDashboardService) ListPartnerships(ctx context.Context, actor usecase.Actor) ([]*entity.Partnership, error) {
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}

	partnerships, err := srv.gateway.ListPartnerships(ctx, actor.Token, actor.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partnerships")
	}

	return partnerships, nil
}

// RequestPartnership proposes a partnership with the actor's store as producer.
func (srv *storeDashboardService) RequestPartnership(ctx context.Context, input usecase.RequestPartnershipInput) (*entity.Partnership, error) {
	actor := input.Actor
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}

	processorID := strings.TrimSpace(input.ProcessorStoreID)
	if processorID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("processor_store_id is required")
	}
	if processorID == actor.StoreID {
		return nil, domainerrors.ErrPartnershipSelf
	}

	partnership, err := srv.gateway.RequestPartnership(ctx, actor.Token, service.PartnershipRequest{
		ProducerStoreID:  actor.StoreID,
		ProcessorStoreID: processorID,
		Note:             strings.TrimSpace(input.Note),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to request partnership")
	}

	srv.publish(ctx, actor, service.EventPartnershipRequested, processorID, partnership.ID, map[string]string{
		"producer_store_id": actor.StoreID,
	})
	srv.record(ctx, srv.newActivity(actor, entity.ActionPartnershipRequested, "partnership", partnership.ID, map[string]any{
		"processor_store_id": processorID,
	}))

	return partnership, nil
}

// RespondPartnership accepts, rejects or terminates a partnership.
func (srv *storeDashboardService) RespondPartnership(ctx context.Context, input usecase.RespondPartnershipInput) (*entity.Partnership, error) {
	actor := input.Actor
	if !actor.HasStore() {
		return nil, domainerrors.ErrStoreRequired
	}
	if !input.Decision.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be accept, reject or terminate")
	}

	partnership, err := srv.gateway.RespondPartnership(ctx, actor.Token, input.PartnershipID, input.Decision)
	if err != nil {
		return nil, errors.Wrap(err, "failed to respond to partnership")
	}

	counterpart := partnership.ProducerStoreID
	if counterpart == actor.StoreID {
		counterpart = partnership.ProcessorStoreID
	}

	srv.publish(ctx, actor, service.EventPartnershipResponded, counterpart, partnership.ID, map[string]string{
		"decision": string(input.Decision),
		"status":   string(partnership.Status),
	})
	srv.record(ctx, srv.newActivity(actor, entity.ActionPartnershipResponded, "partnership", partnership.ID, map[string]any{
		"decision": string(input.Decision),
	}))

	return partnership, nil
}

func (srv *storeDashboardService) newActivity(actor usecase.Actor, action, entityType, entityID string, metadata map[string]any) *entity.ActivityLog {
	return &entity.ActivityLog{
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IP:         actor.IP,
		UserAgent:  actor.UserAgent,
		Metadata:   metadata,
		CreatedAt:  srv.now(),
	}
}

// record writes an activity row. The backend change already happened, so failures are only logged.
func (srv *storeDashboardService) record(ctx context.Context, activity *entity.ActivityLog) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ActivityRepo().Create(ctx, activity)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record activity",
			slog.String("action", activity.Action),
			slog.String("entity_id", activity.EntityID),
			slog.Any("error", err))
	}
}

// publish emits a marketplace event. Failures are logged, never returned.
func (srv *storeDashboardService) publish(ctx context.Context, actor usecase.Actor, eventType, storeID, entityID string, attrs map[string]string) {
	if storeID == "" {
		return
	}

	event := &service.MarketplaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		StoreID:    storeID,
		EntityID:   entityID,
		ActorID:    actor.UserID,
		Attributes: attrs,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish marketplace event",
			slog.String("event_type", eventType),
			slog.String("store_id", storeID),
			slog.Any("error", err))
	}
}
