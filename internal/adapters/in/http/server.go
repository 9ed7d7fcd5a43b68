// Package http exposes the pharmacy use cases over REST with echo and
// receives WhatsApp webhook deliveries for the chat bot.
package http

import (
	"context"
	"fmt"

	"pharmacy/internal/core/application/chatbot"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/auth"
	"pharmacy/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	// CommandHandler runs a command that produces no value.
	CommandHandler[C any] interface {
		Handle(ctx context.Context, cmd C) error
	}
	// CreateHandler runs a command that creates an entity.
	CreateHandler[C any] interface {
		Handle(ctx context.Context, cmd C) (kernel.ID, error)
	}
	QueryHandler[Q, R any] interface {
		Handle(ctx context.Context, query Q) (R, error)
	}
)

// MessageHandler consumes one inbound chat message.
type MessageHandler interface {
	Handle(ctx context.Context, in chatbot.Incoming) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Order lifecycle
	CreateOrder        CreateHandler[commands.CreateOrderCommand]
	ModifyOrder        CommandHandler[commands.ModifyOrderCommand]
	DeleteOrder        CommandHandler[commands.DeleteOrderCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	UpdateOrderStatus  CommandHandler[commands.UpdateOrderStatusCommand]
	VerifyPrescription CommandHandler[commands.VerifyPrescriptionCommand]
	SetPaymentStatus   CommandHandler[commands.SetPaymentStatusCommand]

	// Delivery
	AssignOrder          CommandHandler[commands.AssignOrderCommand]
	UpdateDeliveryStatus CommandHandler[commands.UpdateDeliveryStatusCommand]
	SetDeliveryPayment   CommandHandler[commands.SetDeliveryPaymentCommand]
	SubmitFeedback       CreateHandler[commands.SubmitFeedbackCommand]

	// Administration
	CreateCategory CreateHandler[commands.CreateCategoryCommand]
	CreateMedicine CreateHandler[commands.CreateMedicineCommand]
	UpdateMedicine CommandHandler[commands.UpdateMedicineCommand]
	CreateCourier  CreateHandler[commands.CreateCourierCommand]

	// Queries
	ListCategories      QueryHandler[queries.ListCategoriesQuery, []queries.CategoryView]
	ListMedicines       QueryHandler[queries.ListMedicinesQuery, []queries.MedicineView]
	GetMedicine         QueryHandler[queries.GetMedicineQuery, queries.MedicineView]
	CheckAvailability   QueryHandler[queries.CheckAvailabilityQuery, bool]
	GetOrder            QueryHandler[queries.GetOrderQuery, queries.OrderView]
	ListOrders          QueryHandler[queries.ListOrdersQuery, []queries.OrderView]
	DashboardStats      QueryHandler[queries.DashboardStatsQuery, queries.DashboardStats]
	ListCouriers        QueryHandler[queries.ListCouriersQuery, []queries.CourierView]
	GetCurrentOrder     QueryHandler[queries.GetCurrentOrderQuery, *queries.OrderView]
	AuthenticateCourier QueryHandler[queries.AuthenticateCourierQuery, queries.CourierView]
	ListFeedbacks       QueryHandler[queries.ListFeedbacksQuery, []queries.FeedbackView]
}

// Dependencies are the collaborators the server needs beside the use cases.
type Dependencies struct {
	Bot     MessageHandler
	Images  ports.ImageStore
	Tokens  *auth.Tokens
	Hasher  auth.BcryptHasher
	Admin   auth.AdminCredentials
	Metrics *metrics.Metrics
	// Pingers are checked by GET /health, keyed by service name.
	Pingers map[string]Pinger
}

type Config struct {
	// WebhookVerifyToken must match hub.verify_token on GET /webhook.
	WebhookVerifyToken string
	// MaxUploadBytes bounds a whole multipart order request.
	MaxUploadBytes int64
}

// Server maps HTTP requests onto the application use cases.
type Server struct {
	h        Handlers
	deps     Dependencies
	cfg      Config
	validate *validator.Validate
	doc      *openapi3.T
	logger   zerolog.Logger
}

// NewServer loads and validates the embedded OpenAPI document; an invalid
// document is a startup error.
func NewServer(h Handlers, deps Dependencies, cfg Config, logger zerolog.Logger) (*Server, error) {
	doc, err := loadOpenAPI()
	if err != nil {
		return nil, fmt.Errorf("openapi document: %w", err)
	}
	return &Server{
		h:        h,
		deps:     deps,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		doc:      doc,
		logger:   logger.With().Str("component", "http").Logger(),
	}, nil
}

// Register installs the error handler, middleware and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestID())
	e.Use(s.instrument)
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.deps.Metrics.Handler()))
	e.GET("/openapi.yaml", s.OpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	e.GET("/categories", s.ListCategories)
	e.GET("/medicines", s.ListMedicines)
	e.GET("/medicines/:categoryId", s.ListMedicinesByCategory)
	e.GET("/medicine/:id", s.GetMedicine)
	e.GET("/availability/:id", s.CheckAvailability)

	upload := middleware.BodyLimit(fmt.Sprintf("%dB", s.uploadLimit()))
	e.POST("/order", s.CreateOrder, upload)
	e.GET("/order/:id", s.GetOrder)
	e.PATCH("/order/:id", s.ModifyOrder)
	e.DELETE("/order/:id", s.DeleteOrder)

	admin := s.requireRole(auth.RoleAdmin)
	e.PUT("/order/:id/status", s.UpdateOrderStatus, admin)
	e.PUT("/order/:id/verify-prescription", s.VerifyPrescription, admin)
	e.PUT("/order/:id/payment-status", s.SetPaymentStatus, admin)
	e.PUT("/order/:id/cancel", s.CancelOrder, admin)

	e.POST("/admin/login", s.AdminLogin)
	g := e.Group("/admin", admin)
	g.GET("/dashboard", s.Dashboard)
	g.GET("/orders", s.ListOrders)
	g.GET("/orders/recent", s.RecentOrders)
	g.GET("/delivery-boys", s.ListCouriers)
	g.POST("/delivery-boys", s.CreateCourier)
	g.PUT("/delivery-boys/:id/assign-order", s.AssignOrder)
	g.POST("/categories", s.CreateCategory)
	g.POST("/medicines", s.CreateMedicine)
	g.PATCH("/medicines/:id", s.UpdateMedicine)
	g.GET("/feedbacks", s.ListFeedbacks)

	e.POST("/delivery/login", s.DeliveryLogin)
	d := e.Group("/delivery", s.requireRole(auth.RoleDelivery))
	d.GET("/orders/current", s.CurrentDelivery)
	d.PUT("/orders/:id/status", s.UpdateDeliveryStatus)
	d.PUT("/orders/:id/payment", s.SetDeliveryPayment)

	e.POST("/api/feedback", s.SubmitFeedback)

	e.GET("/webhook", s.VerifyWebhook)
	e.POST("/webhook", s.ReceiveWebhook)
}

func (s *Server) uploadLimit() int64 {
	if s.cfg.MaxUploadBytes > 0 {
		return s.cfg.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}
