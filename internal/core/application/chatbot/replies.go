package chatbot

import (
	"fmt"
	"unicode/utf8"

	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/notification"
)

const (
	stepAwaitQuantity    = "await_quantity"
	stepAwaitName        = "await_name"
	stepAwaitAddress     = "await_address"
	stepAwaitNewQuantity = "await_new_quantity"

	actionMenu     = "menu"
	actionCategory = "cat"
	actionMedicine = "med"
	actionOrder    = "order"
	actionModify   = "modify"
	actionCancel   = "cancel"

	menuMain    = "main"
	menuOrder   = "order"
	menuOrders  = "orders"
	menuSupport = "support"

	keyMedicine     = "medicine"
	keyMedicineName = "medicine_name"
	keyQuantity     = "quantity"
	keyName         = "name"
	keyOrder        = "order"
)

const (
	defaultSupportText = "Contact our support team at support@pharmacy-booking.com or call +1234567890."
	fallbackText       = "Sorry, I did not understand that. Please reply with \"Hi\" to start over."
)

func mainMenu() notification.Message {
	return notification.Buttons(
		"Welcome to Pharmacy Bot! Select an option:",
		notification.Button{ID: actionMenu + ":" + menuOrder, Title: "Order medicine"},
		notification.Button{ID: actionMenu + ":" + menuOrders, Title: "My orders"},
		notification.Button{ID: actionMenu + ":" + menuSupport, Title: "Contact support"},
	)
}

func withMenu(body string) notification.Message {
	return notification.Buttons(body, notification.Button{ID: actionMenu + ":" + menuMain, Title: "Menu"})
}

func stockText(available int) string {
	if available == 0 {
		return "Sorry, this medicine just went out of stock."
	}
	return fmt.Sprintf("Sorry, only %d left in stock. Please send a smaller quantity.", available)
}

func categoryList(categories []queries.CategoryView) notification.Message {
	rows := make([]notification.Row, 0, notification.MaxListRows)
	for _, c := range categories {
		if len(rows) == notification.MaxListRows {
			break
		}
		rows = append(rows, notification.Row{
			ID:          fmt.Sprintf("%s:%s", actionCategory, c.ID),
			Title:       clip(c.Name, notification.MaxRowTitle),
			Description: clip(c.Description, notification.MaxRowDescription),
		})
	}
	return notification.List("Choose a category:", "Categories", notification.Section{Rows: rows})
}

func medicineList(medicines []queries.MedicineView) notification.Message {
	rows := make([]notification.Row, 0, notification.MaxListRows)
	for _, m := range medicines {
		if len(rows) == notification.MaxListRows {
			break
		}
		rows = append(rows, notification.Row{
			ID:          fmt.Sprintf("%s:%s", actionMedicine, m.ID),
			Title:       clip(m.Name, notification.MaxRowTitle),
			Description: fmt.Sprintf("Rs %s, %d in stock", m.Price.StringFixed(2), m.Stock),
		})
	}
	return notification.List("Choose a medicine:", "Medicines", notification.Section{Rows: rows})
}

func orderList(orders []queries.OrderView) notification.Message {
	rows := make([]notification.Row, 0, notification.MaxListRows)
	for _, o := range orders {
		if len(rows) == notification.MaxListRows {
			break
		}
		rows = append(rows, notification.Row{
			ID:          fmt.Sprintf("%s:%s", actionOrder, o.ID),
			Title:       clip(fmt.Sprintf("#%s %s", o.ID, o.MedicineName), notification.MaxRowTitle),
			Description: fmt.Sprintf("%s, Rs %s", o.Status, o.TotalPrice.StringFixed(2)),
		})
	}
	return notification.List("Your recent orders:", "Orders", notification.Section{Rows: rows})
}

func orderDetails(o queries.OrderView) notification.Message {
	body := fmt.Sprintf("Order #%s\n%d x %s\nTotal: Rs %s\nStatus: %s\nPayment: %s",
		o.ID, o.Quantity, o.MedicineName, o.TotalPrice.StringFixed(2), o.Status, o.PaymentStatus)

	if o.Status != "pending" {
		return withMenu(body)
	}
	return notification.Buttons(body,
		notification.Button{ID: fmt.Sprintf("%s:%s", actionModify, o.ID), Title: "Change quantity"},
		notification.Button{ID: fmt.Sprintf("%s:%s", actionCancel, o.ID), Title: "Cancel order"},
		notification.Button{ID: actionMenu + ":" + menuMain, Title: "Menu"},
	)
}

func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
