package catalogrepo

import (
	"context"
	"slices"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMedicineRepository implements ports.MedicineRepository using GORM.
type GormMedicineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMedicineRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicineRepository {
	return &GormMedicineRepository{db: db, tracker: tracker}
}

// Add inserts a medicine and records the generated ID on the aggregate.
func (r *GormMedicineRepository) Add(ctx context.Context, aggregate *catalog.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := medicineFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	if err := aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so a stock of zero is stored as such.
func (r *GormMedicineRepository) Update(ctx context.Context, aggregate *catalog.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := medicineFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMedicineRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Classify(err, "medicine", id)
	}

	return medicineToDomain(dto)
}

// GetForUpdate runs SELECT ... ORDER BY id FOR UPDATE. PostgreSQL takes the
// row locks in output order, so every caller locks in ascending ID order.
func (r *GormMedicineRepository) GetForUpdate(ctx context.Context, ids ...kernel.ID) (map[kernel.ID]*catalog.Medicine, error) {
	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, id.Int64())
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)
	if len(keys) == 0 {
		return map[kernel.ID]*catalog.Medicine{}, nil
	}

	var dtos []MedicineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", keys).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap(err)
	}

	medicines := make(map[kernel.ID]*catalog.Medicine, len(dtos))
	for _, dto := range dtos {
		m, mapErr := medicineToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		medicines[m.ID()] = m
	}

	for _, key := range keys {
		if _, ok := medicines[kernel.ID(key)]; !ok {
			return nil, errs.NewObjectNotFoundError("medicine", kernel.ID(key))
		}
	}

	return medicines, nil
}
