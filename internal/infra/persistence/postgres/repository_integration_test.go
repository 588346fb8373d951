package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to BAZAAR_TEST_POSTGRES_DSN and applies the schema.
// Tests are skipped when the variable is not set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BAZAAR_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("BAZAAR_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	runner, err := migrations.NewRunner(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, runner.Up(context.Background()))

	require.NoError(t, db.Exec("TRUNCATE activity_logs, store_images").Error)

	return db
}

func TestActivityRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Microsecond)
	for i, action := range []string{entity.ActionBrandingUploaded, entity.ActionOrderStatusChanged, entity.ActionOrderStatusChanged} {
		require.NoError(t, repo.Create(ctx, &entity.ActivityLog{
			ActorID:    "user-1",
			ActorRole:  entity.RoleStoreOwner,
			Action:     action,
			EntityType: "order",
			EntityID:   "o1",
			CreatedAt:  base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	logs, total, err := repo.List(ctx, entity.ActivityFilter{Action: entity.ActionOrderStatusChanged, Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 1)
	assert.Equal(t, base.Add(48*time.Hour), logs[0].CreatedAt.UTC())

	count, err := repo.CountSince(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTransactionManager_Integration_RollsBack(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	boom := errors.New("backend rejected")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.StoreImageRepo().Create(ctx, &entity.StoreImage{
			StoreID:     "s1",
			Kind:        entity.ImageKindLogo,
			ObjectKey:   "stores/s1/logo/a.png",
			URL:         "https://cdn/a.png",
			ContentType: "image/png",
			Size:        10,
			UploadedBy:  "user-1",
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	images, err := NewStoreImageRepository(db).ListByStore(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, images)
}
