package http

import (
	"time"

	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Requests

type createOrderRequest struct {
	CustomerName string `json:"customerName" form:"customerName" validate:"required,max=200"`
	Address      string `json:"address" form:"address" validate:"required,max=500"`
	Phone        string `json:"phone" form:"phone" validate:"required,max=32"`
	MedicineID   int64  `json:"medicineId" form:"medicineId" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" form:"quantity" validate:"required,gt=0"`
}

type modifyOrderRequest struct {
	CustomerName *string `json:"customerName" validate:"omitempty,min=1,max=200"`
	Address      *string `json:"address" validate:"omitempty,min=1,max=500"`
	Phone        *string `json:"phone" validate:"omitempty,min=1,max=32"`
	MedicineID   *int64  `json:"medicineId" validate:"omitempty,gt=0"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gt=0"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCourierRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"required,max=32"`
}

type assignOrderRequest struct {
	OrderID int64 `json:"orderId" validate:"required,gt=0"`
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

type createMedicineRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	Price       string `json:"price" validate:"required,numeric"`
	Stock       int    `json:"stock" validate:"gte=0"`
}

type updateMedicineRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	CategoryID  *int64  `json:"categoryId" validate:"omitempty,gt=0"`
	Price       *string `json:"price" validate:"omitempty,numeric"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
}

type feedbackRequest struct {
	OrderID       int64  `json:"orderId" validate:"required,gt=0"`
	DeliveryBoyID int64  `json:"deliveryBoyId" validate:"required,gt=0"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"max=1000"`
}

// Responses

type successResponse struct {
	Success bool `json:"success"`
}

type createdResponse struct {
	ID kernel.ID `json:"id"`
}

type orderCreatedResponse struct {
	Success bool      `json:"success"`
	OrderID kernel.ID `json:"orderId"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type tokenResponse struct {
	Token       string           `json:"token"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	DeliveryBoy *courierResponse `json:"deliveryBoy,omitempty"`
}

type categoryResponse struct {
	ID          kernel.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type medicineResponse struct {
	ID          kernel.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  kernel.ID `json:"categoryId"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
}

type orderResponse struct {
	ID                   kernel.ID  `json:"id"`
	CustomerName         string     `json:"customerName"`
	Address              string     `json:"address"`
	Phone                string     `json:"phone"`
	MedicineID           kernel.ID  `json:"medicineId"`
	MedicineName         string     `json:"medicineName"`
	UnitPrice            string     `json:"unitPrice"`
	Quantity             int        `json:"quantity"`
	Status               string     `json:"status"`
	PaymentStatus        string     `json:"paymentStatus"`
	PrescriptionVerified bool       `json:"prescriptionVerified"`
	PrescriptionImage    string     `json:"prescriptionImage,omitempty"`
	TotalPrice           string     `json:"totalPrice"`
	DeliveryBoyID        *kernel.ID `json:"deliveryBoyId,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

type assignmentResponse struct {
	OrderID      kernel.ID `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	MedicineName string    `json:"medicineName"`
	Status       string    `json:"status"`
}

type courierResponse struct {
	ID           kernel.ID           `json:"id"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	CurrentOrder *assignmentResponse `json:"currentOrder"`
}

type feedbackResponse struct {
	ID              kernel.ID `json:"id"`
	OrderID         kernel.ID `json:"orderId"`
	DeliveryBoyID   kernel.ID `json:"deliveryBoyId"`
	DeliveryBoyName string    `json:"deliveryBoyName"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type dashboardResponse struct {
	TotalOrders  int64  `json:"totalOrders"`
	TotalRevenue string `json:"totalRevenue"`
}

func price(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toCategories(views []queries.CategoryView) []categoryResponse {
	out := make([]categoryResponse, len(views))
	for i, v := range views {
		out[i] = categoryResponse{ID: v.ID, Name: v.Name, Description: v.Description}
	}
	return out
}

func toMedicine(v queries.MedicineView) medicineResponse {
	return medicineResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		CategoryID:  v.CategoryID,
		Price:       price(v.Price),
		Stock:       v.Stock,
	}
}

func toMedicines(views []queries.MedicineView) []medicineResponse {
	out := make([]medicineResponse, len(views))
	for i, v := range views {
		out[i] = toMedicine(v)
	}
	return out
}

func toOrder(v queries.OrderView) orderResponse {
	return orderResponse{
		ID:                   v.ID,
		CustomerName:         v.CustomerName,
		Address:              v.Address,
		Phone:                v.Phone,
		MedicineID:           v.MedicineID,
		MedicineName:         v.MedicineName,
		UnitPrice:            price(v.UnitPrice),
		Quantity:             v.Quantity,
		Status:               v.Status,
		PaymentStatus:        v.PaymentStatus,
		PrescriptionVerified: v.PrescriptionVerified,
		PrescriptionImage:    v.PrescriptionImage,
		TotalPrice:           price(v.TotalPrice),
		DeliveryBoyID:        v.CourierID,
		CreatedAt:            v.CreatedAt,
	}
}

func toOrders(views []queries.OrderView) []orderResponse {
	out := make([]orderResponse, len(views))
	for i, v := range views {
		out[i] = toOrder(v)
	}
	return out
}

func toCourier(v queries.CourierView) courierResponse {
	r := courierResponse{ID: v.ID, Username: v.Username, Name: v.Name, Phone: v.Phone}
	if a := v.CurrentOrder; a != nil {
		r.CurrentOrder = &assignmentResponse{
			OrderID:      a.OrderID,
			CustomerName: a.CustomerName,
			Address:      a.Address,
			MedicineName: a.MedicineName,
			Status:       a.Status,
		}
	}
	return r
}

func toFeedbacks(views []queries.FeedbackView) []feedbackResponse {
	out := make([]feedbackResponse, len(views))
	for i, v := range views {
		out[i] = feedbackResponse{
			ID:              v.ID,
			OrderID:         v.OrderID,
			DeliveryBoyID:   v.CourierID,
			DeliveryBoyName: v.CourierName,
			Rating:          v.Rating,
			Comment:         v.Comment,
			CreatedAt:       v.CreatedAt,
		}
	}
	return out
}
