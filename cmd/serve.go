package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "pharmacy/internal/adapters/in/http"
	"pharmacy/internal/adapters/out/filestore"
	redisadapter "pharmacy/internal/adapters/out/redis"
	"pharmacy/internal/adapters/out/whatsapp"
	"pharmacy/internal/core/application/chatbot"
	"pharmacy/internal/jobs"
	"pharmacy/internal/pkg/auth"
	"pharmacy/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, the WhatsApp webhook and the notification dispatcher",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(cfg.Logging)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	sessions, err := redisadapter.NewSessionStore(ctx, redisadapter.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer sessions.Close()

	sender, err := whatsapp.NewSender(whatsapp.Config{
		BaseURL:       cfg.WhatsApp.BaseURL,
		AccessToken:   cfg.WhatsApp.AccessToken,
		PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
		Timeout:       cfg.WhatsApp.Timeout,
	})
	if err != nil {
		return err
	}
	images, err := filestore.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("auth.jwt_secret: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	root := NewCompositionRoot(cfg, db)
	bot := chatbot.New(chatbot.Handlers{
		PlaceOrder:     root.CreateCreateOrderCommandHandler(),
		ModifyOrder:    root.CreateModifyOrderCommandHandler(),
		DeleteOrder:    root.CreateDeleteOrderCommandHandler(),
		SubmitFeedback: root.CreateSubmitFeedbackCommandHandler(),
		Categories:     root.CreateListCategoriesQueryHandler(),
		Medicines:      root.CreateListMedicinesQueryHandler(),
		Medicine:       root.CreateGetMedicineQueryHandler(),
		GetOrder:       root.CreateGetOrderQueryHandler(),
		OrdersByPhone:  root.CreateOrdersByPhoneQueryHandler(),
	}, sessions, sender, chatbot.Config{
		SessionTTL:    cfg.Bot.SessionTTL,
		SupportText:   cfg.Bot.SupportText,
		OnOrderPlaced: func() { m.Orders.WithLabelValues("whatsapp").Inc() },
	}, logger)

	server, err := httpadapter.NewServer(httpHandlers(&root), httpadapter.Dependencies{
		Bot:     bot,
		Images:  images,
		Tokens:  tokens,
		Hasher:  root.Hasher(),
		Admin:   auth.AdminCredentials{Username: cfg.Auth.AdminUsername, PasswordHash: cfg.Auth.AdminPasswordHash},
		Metrics: m,
		Pingers: map[string]httpadapter.Pinger{
			"postgres": httpadapter.PingFunc(pingDatabase(db)),
			"redis":    sessions,
		},
	}, httpadapter.Config{
		WebhookVerifyToken: cfg.WhatsApp.VerifyToken,
		MaxUploadBytes:     cfg.Uploads.MaxBytes,
	}, logger)
	if err != nil {
		return err
	}

	dispatchJob := jobs.NewNotificationDispatchJob(
		root.CreateDispatchNotificationsCommandHandler(sender, logger),
		jobs.NotificationDispatchConfig{
			Schedule:   cfg.Outbox.Schedule,
			BatchSize:  cfg.Outbox.BatchSize,
			RunTimeout: cfg.Outbox.RunTimeout,
		},
		m.Notifications,
		logger,
	)
	jobManager := jobs.NewJobManager(dispatchJob)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, server, logger)
}

func httpHandlers(root *CompositionRoot) httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:          root.CreateCreateOrderCommandHandler(),
		ModifyOrder:          root.CreateModifyOrderCommandHandler(),
		DeleteOrder:          root.CreateDeleteOrderCommandHandler(),
		CancelOrder:          root.CreateCancelOrderCommandHandler(),
		UpdateOrderStatus:    root.CreateUpdateOrderStatusCommandHandler(),
		VerifyPrescription:   root.CreateVerifyPrescriptionCommandHandler(),
		SetPaymentStatus:     root.CreateSetPaymentStatusCommandHandler(),
		AssignOrder:          root.CreateAssignOrderCommandHandler(),
		UpdateDeliveryStatus: root.CreateUpdateDeliveryStatusCommandHandler(),
		SetDeliveryPayment:   root.CreateSetDeliveryPaymentCommandHandler(),
		SubmitFeedback:       root.CreateSubmitFeedbackCommandHandler(),
		CreateCategory:       root.CreateCreateCategoryCommandHandler(),
		CreateMedicine:       root.CreateCreateMedicineCommandHandler(),
		UpdateMedicine:       root.CreateUpdateMedicineCommandHandler(),
		CreateCourier:        root.CreateCreateCourierCommandHandler(),
		ListCategories:       root.CreateListCategoriesQueryHandler(),
		ListMedicines:        root.CreateListMedicinesQueryHandler(),
		GetMedicine:          root.CreateGetMedicineQueryHandler(),
		CheckAvailability:    root.CreateCheckAvailabilityQueryHandler(),
		GetOrder:             root.CreateGetOrderQueryHandler(),
		ListOrders:           root.CreateListOrdersQueryHandler(),
		DashboardStats:       root.CreateDashboardStatsQueryHandler(),
		ListCouriers:         root.CreateListCouriersQueryHandler(),
		GetCurrentOrder:      root.CreateGetCurrentOrderQueryHandler(),
		AuthenticateCourier:  root.CreateAuthenticateCourierQueryHandler(),
		ListFeedbacks:        root.CreateListFeedbacksQueryHandler(),
	}
}

func pingDatabase(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// startWebServer serves until ctx is cancelled, then drains in-flight
// requests within the shutdown timeout.
func startWebServer(ctx context.Context, server *httpadapter.Server, logger zerolog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)
	server.Register(e)

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("http server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
