package notificationrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/notificationrepo"
	"pharmacy/internal/adapters/out/postgres/pgtest"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestClaimPending_LeasesOldestFirst() {
	ctx := context.Background()
	first := suite.add(notification.FeedbackRequest(7))
	second := suite.add(notification.Text("Your order 8 is on its way"))
	suite.add(notification.Text("Your order 9 is on its way"))

	claimed, err := suite.repository.ClaimPending(ctx, 2, time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)
	suite.Equal(first.ID(), claimed[0].ID())
	suite.Equal(second.ID(), claimed[1].ID())
	suite.Equal(first.Message(), claimed[0].Message())

	again, err := suite.repository.ClaimPending(ctx, 10, time.Minute)
	suite.Require().NoError(err)
	suite.Len(again, 1, "leased rows must be skipped")
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_EndsLeaseAndRecordsOutcome() {
	ctx := context.Background()
	sent := suite.add(notification.Text("sent"))
	failing := suite.add(notification.Text("failing"))

	claimed, err := suite.repository.ClaimPending(ctx, 10, time.Hour)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 2)

	claimed[0].MarkSent(time.Now())
	claimed[1].MarkAttemptFailed(errors.New("provider timeout"), time.Now(), 5)
	suite.Require().NoError(suite.repository.Update(ctx, claimed[0]))
	suite.Require().NoError(suite.repository.Update(ctx, claimed[1]))

	retry, err := suite.repository.ClaimPending(ctx, 10, time.Hour)
	suite.Require().NoError(err)
	suite.Require().Len(retry, 1)
	suite.Equal(failing.ID(), retry[0].ID())
	suite.Equal(1, retry[0].Attempts())
	suite.Equal("provider timeout", retry[0].LastError())
	suite.NotEqual(sent.ID(), retry[0].ID())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestClaimPending_ReclaimsExpiredLease() {
	ctx := context.Background()
	suite.add(notification.Text("stuck"))

	claimed, err := suite.repository.ClaimPending(ctx, 10, 0)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	reclaimed, err := suite.repository.ClaimPending(ctx, 10, time.Minute)
	suite.Require().NoError(err)
	suite.Len(reclaimed, 1)
}

func (suite *NotificationRepositoryIntegrationTestSuite) add(msg notification.Message) *notification.Notification {
	n, err := notification.NewNotification("919845012345", msg, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), n))
	return n
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
