package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/catalogrepo"
	"pharmacy/internal/adapters/out/postgres/courierrepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/adapters/out/postgres/pgtest"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

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

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *orderrepo.GormOrderRepository
	medicine   *catalog.Medicine
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	category, err := catalog.NewCategory("Pain Relief", "")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormCategoryRepository(suite.db, suite.tracker).Add(ctx, category))

	price, _ := kernel.MoneyFromString("12.50")
	suite.medicine, err = catalog.NewMedicine("Paracetamol", "", category.ID(), price, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormMedicineRepository(suite.db, suite.tracker).Add(ctx, suite.medicine))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsAllFields() {
	ctx := context.Background()
	o := suite.newOrder(3)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Positive(o.ID().Int64())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("Asha", loaded.Customer().Name())
	suite.Equal(kernel.Phone("919845012345"), loaded.Customer().Phone())
	suite.Equal(suite.medicine.ID(), loaded.MedicineID())
	suite.Equal(3, loaded.Quantity())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.PaymentPending, loaded.PaymentStatus())
	suite.Equal("37.50", loaded.Total().String())
	suite.Equal("rx/abc.png", loaded.PrescriptionImage())
	suite.True(loaded.StockReserved())
	suite.False(loaded.PrescriptionVerified())
	suite.Nil(loaded.Courier())
	suite.WithinDuration(o.CreatedAt(), loaded.CreatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsCourierAndFlags() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	c, err := courier.NewCourier("ravi", "hash", "Ravi", "")
	suite.Require().NoError(err)
	suite.Require().NoError(courierrepo.NewGormCourierRepository(suite.db, suite.tracker).Add(ctx, c))

	suite.Require().NoError(o.Dispatch(c.ID()))
	suite.Require().NoError(o.SetPaymentStatus(order.PaymentPaid))
	o.VerifyPrescription()
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, loaded.Status())
	suite.Equal(order.PaymentPaid, loaded.PaymentStatus())
	suite.True(loaded.PrescriptionVerified())
	suite.True(loaded.IsHeldBy(c.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, o.ID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_Missing_ReturnsNotFound() {
	tx := suite.db.Begin()
	defer tx.Rollback()

	_, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(context.Background(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(quantity int) *order.Order {
	customer, err := order.NewCustomer("Asha", "12 MG Road", "+91 98450 12345")
	suite.Require().NoError(err)
	o, err := order.NewOrder(customer, suite.medicine.ID(), quantity, suite.medicine.Price(), "rx/abc.png", time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
