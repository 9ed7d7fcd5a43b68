package notification_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Now()

	n, err := notification.NewNotification("919845012345", notification.Text("Rate your delivery"), now)
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.True(t, n.IsPending())
	assert.Zero(t, n.Attempts())

	_, err = notification.NewNotification("", notification.Text("x"), now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = notification.NewNotification("919845012345", notification.Text(""), now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNotification_Attempts(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should park after max attempts", func(t *testing.T) {
		n, _ := notification.NewNotification("919845012345", notification.Text("hi"), now)

		n.MarkAttemptFailed(errors.New("timeout"), now, 2)
		assert.True(t, n.IsPending())
		assert.Equal(t, "timeout", n.LastError())

		n.MarkAttemptFailed(errors.New(strings.Repeat("e", 600)), now, 2)
		assert.False(t, n.IsPending())
		assert.Equal(t, 2, n.Attempts())
		assert.Len(t, n.LastError(), 500)
		require.NotNil(t, n.FailedAt())
		assert.Nil(t, n.SentAt())
	})

	t.Run("should record success", func(t *testing.T) {
		n, _ := notification.NewNotification("919845012345", notification.Text("hi"), now)
		n.MarkAttemptFailed(errors.New("timeout"), now, 3)

		n.MarkSent(now)

		assert.False(t, n.IsPending())
		assert.Equal(t, 2, n.Attempts())
		assert.Empty(t, n.LastError())
		require.NotNil(t, n.SentAt())
	})
}
