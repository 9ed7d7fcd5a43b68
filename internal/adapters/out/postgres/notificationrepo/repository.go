package notificationrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{db: db, tracker: tracker}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	if err = aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update records the outcome of a delivery attempt and ends the lease.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Updates(map[string]any{
			"attempts":      aggregate.Attempts(),
			"last_error":    aggregate.LastError(),
			"sent_at":       aggregate.SentAt(),
			"failed_at":     aggregate.FailedAt(),
			"claimed_until": nil,
		})
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ClaimPending leases the oldest pending rows. SKIP LOCKED lets concurrent
// dispatchers claim disjoint batches; lease times come from the database
// clock so dispatchers on different hosts agree on expiry.
func (r *GormNotificationRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*notification.Notification, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).Raw(`
		UPDATE notifications
		SET claimed_until = now() + (? * interval '1 millisecond')
		WHERE id IN (
			SELECT id
			FROM notifications
			WHERE sent_at IS NULL
				AND failed_at IS NULL
				AND (claimed_until IS NULL OR claimed_until < now())
			ORDER BY id
			LIMIT ?
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *
	`, lease.Milliseconds(), limit).Scan(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap(err)
	}

	slices.SortFunc(dtos, func(a, b NotificationDTO) int { return cmp.Compare(a.ID, b.ID) })

	claimed := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		claimed = append(claimed, n)
	}

	return claimed, nil
}
