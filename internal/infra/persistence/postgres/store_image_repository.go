package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeImageRepository implements the repository.StoreImageRepository interface.
type storeImageRepository struct {
	db *gorm.DB
}

// NewStoreImageRepository is the constructor for storeImageRepository.
func NewStoreImageRepository(db *gorm.DB) repository.StoreImageRepository {
	return &storeImageRepository{
		db: db,
	}
}

// Create records a new upload.
func (repo *storeImageRepository) Create(ctx context.Context, image *entity.StoreImage) error {
	imageM, err := fromStoreImageDomain(image)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("object key already recorded")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid store image")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store image")
	}

	image.ID = imageM.ID.String()
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// ListByStore returns the uploads of one store, newest first.
func (repo *storeImageRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.StoreImage, error) {
	var imageModels []*model.StoreImageModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list store images")
	}

	images := make([]*entity.StoreImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toStoreImageDomain(imageM))
	}

	return images, nil
}

func fromStoreImageDomain(image *entity.StoreImage) (*model.StoreImageModel, error) {
	id := uuid.Nil
	if image.ID != "" {
		parsed, err := uuid.Parse(image.ID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("store image id is not a UUID")
		}
		id = parsed
	}
	if id == uuid.Nil {
		generated, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate store image id")
		}
		id = generated
	}

	createdAt := image.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &model.StoreImageModel{
		ID:          id,
		StoreID:     image.StoreID,
		Kind:        string(image.Kind),
		ObjectKey:   image.ObjectKey,
		URL:         image.URL,
		ContentType: image.ContentType,
		Size:        image.Size,
		UploadedBy:  image.UploadedBy,
		CreatedAt:   createdAt,
	}, nil
}

func toStoreImageDomain(imageM *model.StoreImageModel) *entity.StoreImage {
	return &entity.StoreImage{
		ID:          imageM.ID.String(),
		StoreID:     imageM.StoreID,
		Kind:        entity.ImageKind(imageM.Kind),
		ObjectKey:   imageM.ObjectKey,
		URL:         imageM.URL,
		ContentType: imageM.ContentType,
		Size:        imageM.Size,
		UploadedBy:  imageM.UploadedBy,
		CreatedAt:   imageM.CreatedAt,
	}
}
