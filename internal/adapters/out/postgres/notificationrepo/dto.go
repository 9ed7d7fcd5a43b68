// Package notificationrepo stores the notification outbox.
package notificationrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
)

// NotificationDTO is an outbox row. ClaimedUntil is the dispatcher lease;
// a pending row whose lease is unset or expired can be claimed again.
type NotificationDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Recipient    string     `gorm:"not null"`
	Payload      string     `gorm:"type:jsonb;not null"`
	Attempts     int        `gorm:"not null;default:0"`
	LastError    string     `gorm:"not null;default:''"`
	CreatedAt    time.Time  `gorm:"not null"`
	SentAt       *time.Time `gorm:"index"`
	FailedAt     *time.Time
	ClaimedUntil *time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	payload, err := json.Marshal(n.Message())
	if err != nil {
		return NotificationDTO{}, fmt.Errorf("encode notification payload: %w", err)
	}

	return NotificationDTO{
		ID:        n.ID().Int64(),
		Recipient: n.Recipient().String(),
		Payload:   string(payload),
		Attempts:  n.Attempts(),
		LastError: n.LastError(),
		CreatedAt: n.CreatedAt(),
		SentAt:    n.SentAt(),
		FailedAt:  n.FailedAt(),
	}, nil
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	var msg notification.Message
	if err := json.Unmarshal([]byte(dto.Payload), &msg); err != nil {
		return nil, fmt.Errorf("decode notification %d payload: %w", dto.ID, err)
	}

	return notification.RestoreNotification(
		kernel.ID(dto.ID),
		kernel.Phone(dto.Recipient),
		msg,
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.SentAt,
		dto.FailedAt,
	), nil
}
