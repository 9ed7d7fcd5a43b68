package http

import (
	"context"
	"io"
	"sync"

	"pharmacy/internal/core/application/chatbot"
	"pharmacy/internal/core/domain/model/kernel"
)

type queryFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

func (f queryFunc[Q, R]) Handle(ctx context.Context, query Q) (R, error) { return f(ctx, query) }

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error { return f(ctx, cmd) }

type createFunc[C any] func(ctx context.Context, cmd C) (kernel.ID, error)

func (f createFunc[C]) Handle(ctx context.Context, cmd C) (kernel.ID, error) { return f(ctx, cmd) }

type imageStoreFake struct {
	ext     string
	content []byte
}

func (s *imageStoreFake) Save(_ context.Context, ext string, content io.Reader) (string, error) {
	b, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.ext, s.content = ext, b
	return "stored" + ext, nil
}

type botFake struct {
	mu       sync.Mutex
	received []chatbot.Incoming
	err      error
}

func (b *botFake) Handle(_ context.Context, in chatbot.Incoming) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.received = append(b.received, in)
	return b.err
}
