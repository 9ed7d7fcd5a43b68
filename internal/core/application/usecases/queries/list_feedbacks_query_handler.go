package queries

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListFeedbacksQueryHandler reads ratings newest first with the name of the
// courier who delivered.
type ListFeedbacksQueryHandler struct {
	db *gorm.DB
}

func NewListFeedbacksQueryHandler(db *gorm.DB) ListFeedbacksQueryHandler {
	return ListFeedbacksQueryHandler{db: db}
}

func (h ListFeedbacksQueryHandler) Handle(ctx context.Context, query ListFeedbacksQuery) ([]FeedbackView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID          int64
		OrderID     int64
		CourierID   int64
		CourierName string
		Rating      int
		Comment     string
		CreatedAt   time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.order_id,
			f.courier_id,
			COALESCE(c.name, '') AS courier_name,
			f.rating,
			f.comment,
			f.created_at
		FROM feedbacks f
		LEFT JOIN couriers c ON c.id = f.courier_id
		ORDER BY f.created_at DESC, f.id DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, storeFailure(err)
	}

	feedbacks := make([]FeedbackView, 0, len(rows))
	for _, r := range rows {
		feedbacks = append(feedbacks, FeedbackView{
			ID:          kernel.ID(r.ID),
			OrderID:     kernel.ID(r.OrderID),
			CourierID:   kernel.ID(r.CourierID),
			CourierName: r.CourierName,
			Rating:      r.Rating,
			Comment:     r.Comment,
			CreatedAt:   r.CreatedAt.UTC(),
		})
	}
	return feedbacks, nil
}
