package cmd

import (
	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/auth"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     auth.BcryptHasher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}
}

func (c *CompositionRoot) Hasher() auth.BcryptHasher {
	return c.hasher
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) feedbackUoWFactory() commands.FeedbackUoWFactory {
	return FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cancelPolicy() commands.CancelPolicy {
	return commands.CancelPolicy{RestockOnCancel: c.cfg.Orders.RestockOnCancel}
}

// Commands

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() *commands.CreateCategoryCommandHandler {
	h := commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateMedicineCommandHandler() *commands.CreateMedicineCommandHandler {
	h := commands.NewCreateMedicineCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateMedicineCommandHandler() *commands.UpdateMedicineCommandHandler {
	h := commands.NewUpdateMedicineCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	h := commands.NewCreateCourierCommandHandler(c.courierUoWFactory(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() *commands.ModifyOrderCommandHandler {
	h := commands.NewModifyOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.cancelPolicy())
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.cancelPolicy())
	return &h
}

func (c *CompositionRoot) CreateVerifyPrescriptionCommandHandler() *commands.VerifyPrescriptionCommandHandler {
	h := commands.NewVerifyPrescriptionCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSetPaymentStatusCommandHandler() *commands.SetPaymentStatusCommandHandler {
	h := commands.NewSetPaymentStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() *commands.AssignOrderCommandHandler {
	h := commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() *commands.UpdateDeliveryStatusCommandHandler {
	h := commands.NewUpdateDeliveryStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSetDeliveryPaymentCommandHandler() *commands.SetDeliveryPaymentCommandHandler {
	h := commands.NewSetDeliveryPaymentCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() *commands.SubmitFeedbackCommandHandler {
	h := commands.NewSubmitFeedbackCommandHandler(c.feedbackUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler(
	sender ports.MessageSender,
	logger zerolog.Logger,
) *commands.DispatchNotificationsCommandHandler {
	h := commands.NewDispatchNotificationsCommandHandler(c.notificationUoWFactory(), sender, commands.DispatchPolicy{
		SendTimeout: c.cfg.Outbox.SendTimeout,
		MaxAttempts: c.cfg.Outbox.MaxAttempts,
		Lease:       c.cfg.Outbox.Lease,
	}, logger)
	return &h
}

// Queries

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMedicinesQueryHandler() queries.ListMedicinesQueryHandler {
	return queries.NewListMedicinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMedicineQueryHandler() queries.GetMedicineQueryHandler {
	return queries.NewGetMedicineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckAvailabilityQueryHandler() queries.CheckAvailabilityQueryHandler {
	return queries.NewCheckAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersByPhoneQueryHandler() queries.OrdersByPhoneQueryHandler {
	return queries.NewOrdersByPhoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardStatsQueryHandler() queries.DashboardStatsQueryHandler {
	return queries.NewDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateCourierQueryHandler() queries.AuthenticateCourierQueryHandler {
	return queries.NewAuthenticateCourierQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateListFeedbacksQueryHandler() queries.ListFeedbacksQueryHandler {
	return queries.NewListFeedbacksQueryHandler(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
