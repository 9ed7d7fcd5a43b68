package chatbot

import (
	"context"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Load(ctx context.Context, user kernel.Phone) (ports.ChatSession, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(ports.ChatSession), args.Error(1)
}

func (m *mockSessions) Save(ctx context.Context, user kernel.Phone, session ports.ChatSession, ttl time.Duration) error {
	return m.Called(ctx, user, session, ttl).Error(0)
}

func (m *mockSessions) Delete(ctx context.Context, user kernel.Phone) error {
	return m.Called(ctx, user).Error(0)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, recipient kernel.Phone, message notification.Message) error {
	return m.Called(ctx, recipient, message).Error(0)
}

type mockPlacer struct{ mock.Mock }

func (m *mockPlacer) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type mockModifier struct{ mock.Mock }

func (m *mockModifier) Handle(ctx context.Context, cmd commands.ModifyOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockFeedback struct{ mock.Mock }

func (m *mockFeedback) Handle(ctx context.Context, cmd commands.SubmitFeedbackCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type mockCategories struct{ mock.Mock }

func (m *mockCategories) Handle(ctx context.Context, query queries.ListCategoriesQuery) ([]queries.CategoryView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.CategoryView), args.Error(1)
}

type mockMedicines struct{ mock.Mock }

func (m *mockMedicines) Handle(ctx context.Context, query queries.ListMedicinesQuery) ([]queries.MedicineView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.MedicineView), args.Error(1)
}

type mockMedicine struct{ mock.Mock }

func (m *mockMedicine) Handle(ctx context.Context, query queries.GetMedicineQuery) (queries.MedicineView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.MedicineView), args.Error(1)
}

type mockOrder struct{ mock.Mock }

func (m *mockOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type mockPhoneOrders struct{ mock.Mock }

func (m *mockPhoneOrders) Handle(ctx context.Context, query queries.OrdersByPhoneQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}
