// Package chatbot runs the WhatsApp conversation: a button menu, a guided
// order flow, order tracking, quantity changes, cancellation and delivery
// ratings. Each webhook message is handled independently; the step a user
// is at lives in the session store between messages.
package chatbot

import (
	"context"
	"errors"
	"strings"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// Incoming is one user message taken from a webhook delivery. ReplyID is set
// when the user pressed a button or picked a list row.
type Incoming struct {
	From    kernel.Phone
	Text    string
	ReplyID string
}

type (
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}
	OrderModifier interface {
		Handle(ctx context.Context, cmd commands.ModifyOrderCommand) error
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	FeedbackSubmitter interface {
		Handle(ctx context.Context, cmd commands.SubmitFeedbackCommand) (kernel.ID, error)
	}
	CategoryLister interface {
		Handle(ctx context.Context, query queries.ListCategoriesQuery) ([]queries.CategoryView, error)
	}
	MedicineLister interface {
		Handle(ctx context.Context, query queries.ListMedicinesQuery) ([]queries.MedicineView, error)
	}
	MedicineGetter interface {
		Handle(ctx context.Context, query queries.GetMedicineQuery) (queries.MedicineView, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	PhoneOrderLister interface {
		Handle(ctx context.Context, query queries.OrdersByPhoneQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases the bot drives.
type Handlers struct {
	PlaceOrder     OrderPlacer
	ModifyOrder    OrderModifier
	DeleteOrder    OrderDeleter
	SubmitFeedback FeedbackSubmitter
	Categories     CategoryLister
	Medicines      MedicineLister
	Medicine       MedicineGetter
	GetOrder       OrderGetter
	OrdersByPhone  PhoneOrderLister
}

type Config struct {
	SessionTTL  time.Duration
	SupportText string
	// OnOrderPlaced is called after each order placed through the bot.
	OnOrderPlaced func()
}

type Bot struct {
	handlers Handlers
	sessions ports.SessionStore
	sender   ports.MessageSender
	cfg      Config
	logger   zerolog.Logger
}

func New(handlers Handlers, sessions ports.SessionStore, sender ports.MessageSender, cfg Config, logger zerolog.Logger) *Bot {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.SupportText == "" {
		cfg.SupportText = defaultSupportText
	}
	return &Bot{
		handlers: handlers,
		sessions: sessions,
		sender:   sender,
		cfg:      cfg,
		logger:   logger.With().Str("component", "chatbot").Logger(),
	}
}

// Handle answers one message. Failures of the use cases are turned into a
// reply; only session store and sender failures are returned.
func (b *Bot) Handle(ctx context.Context, in Incoming) error {
	logger := b.logger.With().Str("from", in.From.String()).Logger()

	session, err := b.sessions.Load(ctx, in.From)
	if err != nil {
		return err
	}

	reply, next := b.route(ctx, in, session)
	if reply.Kind == "" {
		return nil
	}

	if next.Step == "" {
		err = b.sessions.Delete(ctx, in.From)
	} else {
		err = b.sessions.Save(ctx, in.From, next, b.cfg.SessionTTL)
	}
	if err != nil {
		return err
	}

	if err = b.sender.Send(ctx, in.From, reply); err != nil {
		logger.Warn().Err(err).Msg("reply not delivered")
		return err
	}
	return nil
}

func (b *Bot) route(ctx context.Context, in Incoming, session ports.ChatSession) (notification.Message, ports.ChatSession) {
	if in.ReplyID != "" {
		return b.onReply(ctx, in, session)
	}

	text := strings.TrimSpace(in.Text)
	switch strings.ToLower(text) {
	case "hi", "hello", "menu", "start":
		return mainMenu(), ports.ChatSession{}
	case "cancel", "stop":
		return notification.Text("Okay, stopped. Reply \"Hi\" for the menu."), ports.ChatSession{}
	}

	switch session.Step {
	case stepAwaitQuantity:
		return b.onQuantity(session, text)
	case stepAwaitName:
		return b.onName(session, text)
	case stepAwaitAddress:
		return b.placeOrder(ctx, in.From, session, text)
	case stepAwaitNewQuantity:
		return b.changeQuantity(ctx, in.From, session, text)
	}

	// Numeric shortcuts of the text menu.
	switch text {
	case "1":
		return b.startOrder(ctx)
	case "2":
		return notification.Text(b.cfg.SupportText), ports.ChatSession{}
	}

	return notification.Text(fallbackText), ports.ChatSession{}
}

func (b *Bot) onReply(ctx context.Context, in Incoming, session ports.ChatSession) (notification.Message, ports.ChatSession) {
	if orderID, rating, ok := notification.ParseRatingReply(in.ReplyID); ok {
		return b.rate(ctx, in.From, orderID, rating)
	}

	action, arg, _ := strings.Cut(in.ReplyID, ":")
	switch action {
	case actionMenu:
		switch arg {
		case menuOrder:
			return b.startOrder(ctx)
		case menuOrders:
			return b.myOrders(ctx, in.From)
		case menuSupport:
			return notification.Text(b.cfg.SupportText), ports.ChatSession{}
		default:
			return mainMenu(), ports.ChatSession{}
		}
	case actionCategory:
		return b.chooseCategory(ctx, arg)
	case actionMedicine:
		return b.chooseMedicine(ctx, arg, session)
	case actionOrder:
		return b.track(ctx, in.From, arg)
	case actionModify:
		return b.askNewQuantity(ctx, in.From, arg)
	case actionCancel:
		return b.cancel(ctx, in.From, arg)
	}

	return notification.Text(fallbackText), ports.ChatSession{}
}

// failure turns a use case error into a reply the user can act on.
func (b *Bot) failure(err error, action string) notification.Message {
	var stock *catalog.InsufficientStockError
	switch {
	case errors.As(err, &stock):
		return notification.Text(stockText(stock.Available))
	case errors.Is(err, errs.ErrObjectNotFound):
		return withMenu("We could not find that order.")
	case errors.Is(err, errs.ErrInvalidState):
		return withMenu("This order can no longer be changed.")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return notification.Text("That does not look right. Please try again.")
	}

	b.logger.Error().Err(err).Str("action", action).Msg("chat action failed")
	return withMenu("Something went wrong on our side. Please try again later.")
}
