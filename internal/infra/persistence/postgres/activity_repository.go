package postgres

import (
	"context"
	"encoding/json"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create appends a new activity record.
func (repo *activityRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	activityM, err := fromActivityDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = activityM.ID.String()
	log.CreatedAt = activityM.CreatedAt

	return nil
}

// List returns one page of activity, newest first, and the total number of matches.
func (repo *activityRepository) List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{})
	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	var activityModels []*model.ActivityLogModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&activityModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(activityModels))
	for _, activityM := range activityModels {
		logs = append(logs, toActivityDomain(activityM))
	}

	return logs, total, nil
}

// CountSince counts activity records created at or after the given time.
func (repo *activityRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityLogModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent activity")
	}

	return count, nil
}

func fromActivityDomain(log *entity.ActivityLog) (*model.ActivityLogModel, error) {
	id := uuid.Nil
	if log.ID != "" {
		parsed, err := uuid.Parse(log.ID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("activity id is not a UUID")
		}
		id = parsed
	}
	if id == uuid.Nil {
		generated, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate activity id")
		}
		id = generated
	}

	metadata := datatypes.JSON("{}")
	if len(log.Metadata) > 0 {
		raw, err := json.Marshal(log.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode activity metadata")
		}
		metadata = raw
	}

	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &model.ActivityLogModel{
		ID:         id,
		ActorID:    log.ActorID,
		ActorRole:  string(log.ActorRole),
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		IP:         log.IP,
		UserAgent:  log.UserAgent,
		Metadata:   metadata,
		CreatedAt:  createdAt,
	}, nil
}

func toActivityDomain(activityM *model.ActivityLogModel) *entity.ActivityLog {
	var metadata map[string]any
	if len(activityM.Metadata) > 0 {
		// Metadata is written by this service only; a decode failure leaves it empty.
		_ = json.Unmarshal(activityM.Metadata, &metadata)
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	return &entity.ActivityLog{
		ID:         activityM.ID.String(),
		ActorID:    activityM.ActorID,
		ActorRole:  entity.Role(activityM.ActorRole),
		Action:     activityM.Action,
		EntityType: activityM.EntityType,
		EntityID:   activityM.EntityID,
		IP:         activityM.IP,
		UserAgent:  activityM.UserAgent,
		Metadata:   metadata,
		CreatedAt:  activityM.CreatedAt,
	}
}
