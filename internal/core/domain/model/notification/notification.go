package notification

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
)

// ErrNotificationIsNotConstructed is returned for a zero-value Notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// lastErrorLimit caps the stored provider error so one noisy response does
// not bloat the outbox table.
const lastErrorLimit = 500

// Notification is an outbox record: a message waiting to be sent to recipient.
type Notification struct {
	id        kernel.ID
	recipient kernel.Phone
	message   Message
	attempts  int
	lastError string
	createdAt time.Time
	sentAt    *time.Time
	failedAt  *time.Time
	valid     bool
}

// NewNotification queues message for recipient.
func NewNotification(recipient kernel.Phone, message Message, createdAt time.Time) (*Notification, error) {
	if err := message.Validate(); err != nil {
		return nil, err
	}
	if _, err := kernel.NewPhone(recipient.String()); err != nil {
		return nil, err
	}
	return &Notification{
		recipient: recipient,
		message:   message,
		createdAt: createdAt.UTC(),
		valid:     true,
	}, nil
}

// RestoreNotification rehydrates an outbox row.
func RestoreNotification(
	id kernel.ID,
	recipient kernel.Phone,
	message Message,
	attempts int,
	lastError string,
	createdAt time.Time,
	sentAt, failedAt *time.Time,
) *Notification {
	return &Notification{
		id:        id,
		recipient: recipient,
		message:   message,
		attempts:  attempts,
		lastError: lastError,
		createdAt: createdAt,
		sentAt:    sentAt,
		failedAt:  failedAt,
		valid:     true,
	}
}

func (n *Notification) Validate() error {
	if n == nil || !n.valid {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.ID           { return n.id }
func (n *Notification) Recipient() kernel.Phone { return n.recipient }
func (n *Notification) Message() Message        { return n.message }
func (n *Notification) Attempts() int           { return n.attempts }
func (n *Notification) LastError() string       { return n.lastError }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }
func (n *Notification) SentAt() *time.Time      { return n.sentAt }
func (n *Notification) FailedAt() *time.Time    { return n.failedAt }

// IsPending reports whether the dispatcher should still try to send it.
func (n *Notification) IsPending() bool {
	return n.sentAt == nil && n.failedAt == nil
}

// SetID records the identifier assigned by the store on insert.
func (n *Notification) SetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

// MarkSent records a successful delivery.
func (n *Notification) MarkSent(at time.Time) {
	n.attempts++
	at = at.UTC()
	n.sentAt = &at
	n.lastError = ""
}

// MarkAttemptFailed records a failed delivery. Once maxAttempts attempts have
// failed the notification is parked and IsPending turns false.
func (n *Notification) MarkAttemptFailed(cause error, at time.Time, maxAttempts int) {
	n.attempts++
	msg := cause.Error()
	if len(msg) > lastErrorLimit {
		msg = msg[:lastErrorLimit]
	}
	n.lastError = msg
	if n.attempts >= maxAttempts {
		at = at.UTC()
		n.failedAt = &at
	}
}
