package redis_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/redis"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type SessionStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	store     *redis.SessionStore
}

func (suite *SessionStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.store, err = redis.NewSessionStore(ctx, redis.Config{Addr: endpoint})
	suite.Require().NoError(err)
}

func (suite *SessionStoreTestSuite) TearDownSuite() {
	if suite.store != nil {
		suite.Require().NoError(suite.store.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionStoreTestSuite) TestLoad_Missing_ReturnsZeroSession() {
	session, err := suite.store.Load(context.Background(), "919800000001")

	suite.Require().NoError(err)
	suite.Empty(session.Step)
	suite.Nil(session.Data)
}

func (suite *SessionStoreTestSuite) TestSaveLoadDelete() {
	ctx := context.Background()
	saved := ports.ChatSession{Step: "await_quantity", Data: map[string]string{"medicine": "4"}}

	suite.Require().NoError(suite.store.Save(ctx, "919800000002", saved, time.Minute))

	loaded, err := suite.store.Load(ctx, "919800000002")
	suite.Require().NoError(err)
	suite.Equal(saved, loaded)

	suite.Require().NoError(suite.store.Delete(ctx, "919800000002"))
	loaded, err = suite.store.Load(ctx, "919800000002")
	suite.Require().NoError(err)
	suite.Empty(loaded.Step)
}

func (suite *SessionStoreTestSuite) TestSave_Expires() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Save(ctx, "919800000003", ports.ChatSession{Step: "menu"}, time.Second))

	suite.Eventually(func() bool {
		s, err := suite.store.Load(ctx, "919800000003")
		return err == nil && s.Step == ""
	}, 5*time.Second, 100*time.Millisecond)
}

func (suite *SessionStoreTestSuite) TestLoad_CancelledContext_ReturnsDependencyFailure() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.store.Load(ctx, "919800000004")

	suite.Require().ErrorIs(err, errs.ErrDependencyFailure)
}

func (suite *SessionStoreTestSuite) TestPing() {
	suite.Require().NoError(suite.store.Ping(context.Background()))
}

func TestSessionStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}
