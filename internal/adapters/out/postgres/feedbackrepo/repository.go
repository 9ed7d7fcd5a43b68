// Package feedbackrepo appends delivery ratings to the feedbacks table.
package feedbackrepo

import (
	"context"
	"time"

	"pharmacy/internal/adapters/out/postgres/pgerr"
	"pharmacy/internal/core/domain/model/feedback"
	"pharmacy/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type FeedbackDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	CourierID int64     `gorm:"not null;index"`
	Rating    int       `gorm:"not null;check:chk_feedbacks_rating,rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (FeedbackDTO) TableName() string {
	return "feedbacks"
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// GormFeedbackRepository implements ports.FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormFeedbackRepository(db *gorm.DB, tracker aggregateTracker) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db, tracker: tracker}
}

func (r *GormFeedbackRepository) Add(ctx context.Context, aggregate *feedback.Feedback) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FeedbackDTO{
		OrderID:   aggregate.OrderID().Int64(),
		CourierID: aggregate.CourierID().Int64(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	if err := aggregate.SetID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
