package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharmacy/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct{ mock.Mock }

func (m *mockDispatcher) Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (commands.DispatchResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.DispatchResult), args.Error(1)
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (j *fakeJob) Start() error {
	j.started = true
	return j.startErr
}

func (j *fakeJob) Stop() { j.stopped = true }

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_notifications_total"}, []string{"result"})
}

func TestNotificationDispatchJob_RunOnce_CountsResult(t *testing.T) {
	dispatcher := &mockDispatcher{}
	dispatcher.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DispatchNotificationsCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(commands.DispatchResult{Claimed: 3, Sent: 2, Failed: 1}, nil).Once()
	counter := newCounter()
	job := NewNotificationDispatchJob(dispatcher, NotificationDispatchConfig{
		Schedule:   "*/5 * * * * *",
		BatchSize:  25,
		RunTimeout: time.Second,
	}, counter, zerolog.Nop())

	job.RunOnce()

	dispatcher.AssertExpectations(t)
	assert.InDelta(t, 2, testutil.ToFloat64(counter.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues("failed")), 0)
}

func TestNotificationDispatchJob_RunOnce_ErrorIsSwallowed(t *testing.T) {
	dispatcher := &mockDispatcher{}
	dispatcher.On("Handle", mock.Anything, mock.Anything).
		Return(commands.DispatchResult{}, errors.New("store down")).Once()
	job := NewNotificationDispatchJob(dispatcher, NotificationDispatchConfig{
		Schedule:   "* * * * * *",
		BatchSize:  10,
		RunTimeout: time.Second,
	}, nil, zerolog.Nop())

	assert.NotPanics(t, job.RunOnce)
	dispatcher.AssertExpectations(t)
}

func TestNotificationDispatchJob_Start_InvalidSchedule(t *testing.T) {
	job := NewNotificationDispatchJob(&mockDispatcher{}, NotificationDispatchConfig{
		Schedule:   "every now and then",
		BatchSize:  10,
		RunTimeout: time.Second,
	}, nil, zerolog.Nop())

	require.Error(t, job.Start())
}

func TestNotificationDispatchJob_StartStop(t *testing.T) {
	dispatcher := &mockDispatcher{}
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(commands.DispatchResult{}, nil).Maybe()
	job := NewNotificationDispatchJob(dispatcher, NotificationDispatchConfig{
		Schedule:   "* * * * * *",
		BatchSize:  10,
		RunTimeout: time.Second,
	}, nil, zerolog.Nop())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAll_StopsStartedOnFailure(t *testing.T) {
	first := &fakeJob{}
	second := &fakeJob{startErr: errors.New("boom")}
	third := &fakeJob{}

	err := NewJobManager(first, second, third).StartAll()

	require.Error(t, err)
	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
	assert.False(t, third.started)
}

func TestJobManager_StopAll(t *testing.T) {
	a, b := &fakeJob{}, &fakeJob{}
	m := NewJobManager(a, b)

	require.NoError(t, m.StartAll())
	m.StopAll()

	assert.True(t, a.stopped)
	assert.True(t, b.stopped)
}
