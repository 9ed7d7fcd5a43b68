package courierrepo

import (
	"context"
	"errors"
	"strings"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
// The connection must be opened with TranslateError so duplicate usernames
// surface as gorm.ErrDuplicatedKey.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a courier. A taken username yields errs.ErrInvalidState.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewInvalidStateError("courier "+dto.Username, "registered", "register")
		}
		return pgerr.Wrap(err)
	}

	if err := aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCourierRepository) GetByUsername(ctx context.Context, username string) (*courier.Courier, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		return nil, pgerr.Classify(err, "courier", username)
	}

	return toDomain(dto), nil
}

// FindHoldingForUpdate returns nil without error when no courier holds orderID.
func (r *GormCourierRepository) FindHoldingForUpdate(ctx context.Context, orderID kernel.ID) (*courier.Courier, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("current_order_id = ?", orderID.Int64()).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap(err)
	}

	if len(dtos) == 0 {
		return nil, nil
	}
	return toDomain(dtos[0]), nil
}

func (r *GormCourierRepository) get(ctx context.Context, db *gorm.DB, id kernel.ID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Classify(err, "courier", id)
	}

	return toDomain(dto), nil
}
