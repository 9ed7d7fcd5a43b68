package commands_test

import (
	"context"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/courier"
	"pharmacy/internal/core/domain/model/feedback"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

type MockMedicineRepository struct{ mock.Mock }

func (m *MockMedicineRepository) Add(ctx context.Context, med *catalog.Medicine) error {
	return m.Called(ctx, med).Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, med *catalog.Medicine) error {
	return m.Called(ctx, med).Error(0)
}

func (m *MockMedicineRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Medicine, error) {
	args := m.Called(ctx, id)
	med, _ := args.Get(0).(*catalog.Medicine)
	return med, args.Error(1)
}

func (m *MockMedicineRepository) GetForUpdate(ctx context.Context, ids ...kernel.ID) (map[kernel.ID]*catalog.Medicine, error) {
	args := m.Called(ctx, ids)
	meds, _ := args.Get(0).(map[kernel.ID]*catalog.Medicine)
	return meds, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetByUsername(ctx context.Context, username string) (*courier.Courier, error) {
	args := m.Called(ctx, username)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) FindHoldingForUpdate(ctx context.Context, orderID kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, orderID)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, f *feedback.Feedback) error {
	return m.Called(ctx, f).Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit, lease)
	ns, _ := args.Get(0).([]*notification.Notification)
	return ns, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface. Repositories are
// plain fields so a test wires only the ones its handler touches.
type MockUoW struct {
	mock.Mock

	categories    *MockCategoryRepository
	medicines     *MockMedicineRepository
	orders        *MockOrderRepository
	couriers      *MockCourierRepository
	feedbacks     *MockFeedbackRepository
	notifications *MockNotificationRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		categories:    new(MockCategoryRepository),
		medicines:     new(MockMedicineRepository),
		orders:        new(MockOrderRepository),
		couriers:      new(MockCourierRepository),
		feedbacks:     new(MockFeedbackRepository),
		notifications: new(MockNotificationRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CategoryRepository() ports.CategoryRepository         { return m.categories }
func (m *MockUoW) MedicineRepository() ports.MedicineRepository         { return m.medicines }
func (m *MockUoW) OrderRepository() ports.OrderRepository               { return m.orders }
func (m *MockUoW) CourierRepository() ports.CourierRepository           { return m.couriers }
func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository         { return m.feedbacks }
func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return m.notifications }

// expectTx registers the Begin/Commit/Rollback sequence of a handler run.
// commit=false means the handler is expected to bail out before Commit.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.medicines.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.couriers.AssertExpectations(t)
	m.feedbacks.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type catalogUoWFactory struct{ uow *MockUoW }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type courierUoWFactory struct{ uow *MockUoW }

func (f courierUoWFactory) Create() commands.CourierUoW { return f.uow }

type feedbackUoWFactory struct{ uow *MockUoW }

func (f feedbackUoWFactory) Create() commands.FeedbackUoW { return f.uow }

type notificationUoWFactory struct{ uow *MockUoW }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockMessageSender struct{ mock.Mock }

func (m *MockMessageSender) Send(ctx context.Context, recipient kernel.Phone, msg notification.Message) error {
	return m.Called(ctx, recipient, msg).Error(0)
}

// fixtures

func testMedicine(id kernel.ID, price string, stock int) *catalog.Medicine {
	p, _ := kernel.MoneyFromString(price)
	return catalog.RestoreMedicine(id, "Medicine "+id.String(), "", 1, p, stock)
}

func testOrder(id, medicineID kernel.ID, quantity int, status order.Status, payment order.PaymentStatus, courierID *kernel.ID) *order.Order {
	total, _ := kernel.MoneyFromString("10")
	return order.RestoreOrder(
		id, order.RestoreCustomer("Asha", "12 MG Road", "919845012345"),
		medicineID, quantity, status, time.Now(), "", total.Times(quantity), payment, false, courierID, true,
	)
}

func idPtr(id kernel.ID) *kernel.ID { return &id }
