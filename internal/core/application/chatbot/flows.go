package chatbot

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strconv"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

func (b *Bot) startOrder(ctx context.Context) (notification.Message, ports.ChatSession) {
	categories, err := b.handlers.Categories.Handle(ctx, queries.NewListCategoriesQuery())
	if err != nil {
		return b.failure(err, "list categories"), ports.ChatSession{}
	}
	if len(categories) == 0 {
		return withMenu("Our catalog is empty right now."), ports.ChatSession{}
	}
	return categoryList(categories), ports.ChatSession{}
}

func (b *Bot) chooseCategory(ctx context.Context, arg string) (notification.Message, ports.ChatSession) {
	categoryID, err := kernel.ParseID(arg)
	if err != nil {
		return notification.Text(fallbackText), ports.ChatSession{}
	}
	query, err := queries.NewListMedicinesQuery(&categoryID)
	if err != nil {
		return b.failure(err, "list medicines"), ports.ChatSession{}
	}

	medicines, err := b.handlers.Medicines.Handle(ctx, query)
	if err != nil {
		return b.failure(err, "list medicines"), ports.ChatSession{}
	}

	inStock := medicines[:0:0]
	for _, m := range medicines {
		if m.Stock > 0 {
			inStock = append(inStock, m)
		}
	}
	if len(inStock) == 0 {
		return withMenu("Nothing in this category is in stock."), ports.ChatSession{}
	}
	return medicineList(inStock), ports.ChatSession{}
}

func (b *Bot) chooseMedicine(ctx context.Context, arg string, session ports.ChatSession) (notification.Message, ports.ChatSession) {
	medicineID, err := kernel.ParseID(arg)
	if err != nil {
		return notification.Text(fallbackText), session
	}
	query, err := queries.NewGetMedicineQuery(medicineID)
	if err != nil {
		return b.failure(err, "choose medicine"), ports.ChatSession{}
	}

	m, err := b.handlers.Medicine.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return withMenu("That medicine is no longer available."), ports.ChatSession{}
	}
	if err != nil {
		return b.failure(err, "choose medicine"), ports.ChatSession{}
	}
	if m.Stock == 0 {
		return notification.Text(stockText(0)), ports.ChatSession{}
	}

	next := ports.ChatSession{
		Step: stepAwaitQuantity,
		Data: map[string]string{keyMedicine: m.ID.String(), keyMedicineName: m.Name},
	}
	return notification.Text(fmt.Sprintf("How many units of %s would you like?", m.Name)), next
}

func (b *Bot) onQuantity(session ports.ChatSession, text string) (notification.Message, ports.ChatSession) {
	qty, err := strconv.Atoi(text)
	if err != nil || qty <= 0 {
		return notification.Text("Please send the quantity as a number, e.g. 2."), session
	}
	return notification.Text("What name should we put on the order?"),
		advance(session, stepAwaitName, keyQuantity, strconv.Itoa(qty))
}

func (b *Bot) onName(session ports.ChatSession, text string) (notification.Message, ports.ChatSession) {
	if text == "" {
		return notification.Text("Please send your name."), session
	}
	return notification.Text("Where should we deliver it? Please send the full address."),
		advance(session, stepAwaitAddress, keyName, text)
}

func (b *Bot) placeOrder(ctx context.Context, from kernel.Phone, session ports.ChatSession, address string) (notification.Message, ports.ChatSession) {
	if address == "" {
		return notification.Text("Please send the delivery address."), session
	}

	medicineID, idErr := kernel.ParseID(session.Data[keyMedicine])
	qty, qtyErr := strconv.Atoi(session.Data[keyQuantity])
	if idErr != nil || qtyErr != nil {
		return notification.Text(fallbackText), ports.ChatSession{}
	}

	cmd, err := commands.NewCreateOrderCommand(session.Data[keyName], address, from.String(), medicineID, qty, "")
	if err != nil {
		return b.failure(err, "place order"), ports.ChatSession{}
	}

	orderID, err := b.handlers.PlaceOrder.Handle(ctx, cmd)
	if err != nil {
		return b.failure(err, "place order"), ports.ChatSession{}
	}
	if b.cfg.OnOrderPlaced != nil {
		b.cfg.OnOrderPlaced()
	}

	b.logger.Info().Str("order_id", orderID.String()).Msg("order placed via chat")
	body := fmt.Sprintf("Thank you! Order #%s for %d x %s is placed. We will message you when it is delivered.",
		orderID, qty, session.Data[keyMedicineName])
	return notification.Buttons(body,
		notification.Button{ID: fmt.Sprintf("%s:%s", actionOrder, orderID), Title: "Track order"},
		notification.Button{ID: actionMenu + ":" + menuMain, Title: "Menu"},
	), ports.ChatSession{}
}

func (b *Bot) myOrders(ctx context.Context, from kernel.Phone) (notification.Message, ports.ChatSession) {
	query, err := queries.NewOrdersByPhoneQuery(from.String())
	if err != nil {
		return b.failure(err, "my orders"), ports.ChatSession{}
	}
	orders, err := b.handlers.OrdersByPhone.Handle(ctx, query)
	if err != nil {
		return b.failure(err, "my orders"), ports.ChatSession{}
	}
	if len(orders) == 0 {
		return withMenu("You have no orders yet."), ports.ChatSession{}
	}
	return orderList(orders), ports.ChatSession{}
}

// ownOrder loads an order and hides orders placed from other numbers.
func (b *Bot) ownOrder(ctx context.Context, from kernel.Phone, arg string) (queries.OrderView, error) {
	orderID, err := kernel.ParseID(arg)
	if err != nil {
		return queries.OrderView{}, err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	o, err := b.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		return queries.OrderView{}, err
	}
	if o.Phone != from.String() {
		return queries.OrderView{}, errs.NewObjectNotFoundError("order", orderID)
	}
	return o, nil
}

func (b *Bot) track(ctx context.Context, from kernel.Phone, arg string) (notification.Message, ports.ChatSession) {
	o, err := b.ownOrder(ctx, from, arg)
	if err != nil {
		return b.failure(err, "track order"), ports.ChatSession{}
	}
	return orderDetails(o), ports.ChatSession{}
}

func (b *Bot) askNewQuantity(ctx context.Context, from kernel.Phone, arg string) (notification.Message, ports.ChatSession) {
	o, err := b.ownOrder(ctx, from, arg)
	if err != nil {
		return b.failure(err, "modify order"), ports.ChatSession{}
	}
	if o.Status != order.Pending.String() {
		return withMenu("This order can no longer be changed."), ports.ChatSession{}
	}
	next := ports.ChatSession{Step: stepAwaitNewQuantity, Data: map[string]string{keyOrder: o.ID.String()}}
	return notification.Text(fmt.Sprintf("You ordered %d x %s. How many would you like instead?", o.Quantity, o.MedicineName)), next
}

func (b *Bot) changeQuantity(ctx context.Context, from kernel.Phone, session ports.ChatSession, text string) (notification.Message, ports.ChatSession) {
	qty, err := strconv.Atoi(text)
	if err != nil || qty <= 0 {
		return notification.Text("Please send the quantity as a number, e.g. 2."), session
	}

	o, err := b.ownOrder(ctx, from, session.Data[keyOrder])
	if err != nil {
		return b.failure(err, "modify order"), ports.ChatSession{}
	}

	cmd, err := commands.NewModifyOrderCommand(o.ID, commands.OrderChanges{Quantity: &qty})
	if err != nil {
		return b.failure(err, "modify order"), ports.ChatSession{}
	}
	if err = b.handlers.ModifyOrder.Handle(ctx, cmd); err != nil {
		return b.failure(err, "modify order"), ports.ChatSession{}
	}

	return withMenu(fmt.Sprintf("Order #%s now has %d x %s.", o.ID, qty, o.MedicineName)), ports.ChatSession{}
}

func (b *Bot) cancel(ctx context.Context, from kernel.Phone, arg string) (notification.Message, ports.ChatSession) {
	o, err := b.ownOrder(ctx, from, arg)
	if err != nil {
		return b.failure(err, "cancel order"), ports.ChatSession{}
	}

	cmd, err := commands.NewDeleteOrderCommand(o.ID)
	if err != nil {
		return b.failure(err, "cancel order"), ports.ChatSession{}
	}
	if err = b.handlers.DeleteOrder.Handle(ctx, cmd); err != nil {
		return b.failure(err, "cancel order"), ports.ChatSession{}
	}

	return withMenu(fmt.Sprintf("Order #%s is cancelled.", o.ID)), ports.ChatSession{}
}

func (b *Bot) rate(ctx context.Context, from kernel.Phone, orderID kernel.ID, rating int) (notification.Message, ports.ChatSession) {
	o, err := b.ownOrder(ctx, from, orderID.String())
	if err != nil {
		return b.failure(err, "rate delivery"), ports.ChatSession{}
	}
	if o.CourierID == nil {
		return withMenu("This order has not been delivered yet."), ports.ChatSession{}
	}

	cmd, err := commands.NewSubmitFeedbackCommand(o.ID, *o.CourierID, rating, "")
	if err != nil {
		return b.failure(err, "rate delivery"), ports.ChatSession{}
	}
	if _, err = b.handlers.SubmitFeedback.Handle(ctx, cmd); err != nil {
		return b.failure(err, "rate delivery"), ports.ChatSession{}
	}

	return notification.Text("Thank you for your feedback!"), ports.ChatSession{}
}

// advance moves to step, keeping collected answers plus key.
func advance(session ports.ChatSession, step, key, value string) ports.ChatSession {
	data := maps.Clone(session.Data)
	if data == nil {
		data = make(map[string]string, 1)
	}
	data[key] = value
	return ports.ChatSession{Step: step, Data: data}
}
