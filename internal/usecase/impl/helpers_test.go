package impl

import (
	"io"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session:    &config.SessionConfig{TTL: 15 * time.Minute},
		Storage:    &config.StorageConfig{MaxUploadSize: 1024},
		Storefront: &config.StorefrontConfig{PublicBaseURL: "https://bazaar.test"},
	}
}

func ownerActor() usecase.Actor {
	return usecase.Actor{
		UserID:  "user-1",
		Role:    entity.RoleStoreOwner,
		StoreID: "store-1",
		Token:   "token-1",
		IP:      "203.0.113.7",
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
