package catalogrepo

import (
	"context"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{db: db, tracker: tracker}
}

// Add inserts a category and records the generated ID on the aggregate.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *catalog.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	if err := aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Classify(err, "category", id)
	}

	return categoryToDomain(dto), nil
}
