package labelrepo

import (
	"context"
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"
	"packaging/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLabelRepository implements ports.LabelRepository using GORM.
type GormLabelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLabelRepository creates a new GORM label repository.
func NewGormLabelRepository(db *gorm.DB, tracker aggregateTracker) *GormLabelRepository {
	return &GormLabelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new label to the database.
func (r *GormLabelRepository) Add(ctx context.Context, aggregate *label.Label) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing label to the database. All fields are written so
// the printed flag and attached document always reach the database.
func (r *GormLabelRepository) Update(ctx context.Context, aggregate *label.Label) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LabelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a label by ID.
func (r *GormLabelRepository) Get(ctx context.Context, id kernel.UUID) (*label.Label, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LabelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("label", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all labels of one order, newest first.
func (r *GormLabelRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*label.Label, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LabelDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	labels := make([]*label.Label, 0, len(dtos))
	for _, dto := range dtos {
		l, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		labels = append(labels, l)
	}

	return labels, nil
}
