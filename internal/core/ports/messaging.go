package ports

import (
	"context"
	"io"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
)

// MessageSender delivers structured content to a chat user. It fails
// independently of any order state and must honour ctx cancellation.
type MessageSender interface {
	Send(ctx context.Context, recipient kernel.Phone, message notification.Message) error
}

// ChatSession is the per-user conversation state of the bot.
type ChatSession struct {
	Step string            `json:"step"`
	Data map[string]string `json:"data,omitempty"`
}

// SessionStore keeps chat sessions between webhook deliveries.
type SessionStore interface {
	// Load returns the stored session, or a zero session when none exists.
	Load(ctx context.Context, user kernel.Phone) (ChatSession, error)
	Save(ctx context.Context, user kernel.Phone, session ChatSession, ttl time.Duration) error
	Delete(ctx context.Context, user kernel.Phone) error
}

// ImageStore keeps uploaded prescription images.
type ImageStore interface {
	// Save stores the content under a fresh name with the given extension
	// and returns the reference to record on the order.
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
}

// PasswordHasher hashes and checks login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns errs.ErrUnauthorized when password does not match hash.
	Compare(hash, password string) error
}
