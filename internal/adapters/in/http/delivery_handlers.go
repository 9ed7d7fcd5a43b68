package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// DeliveryLogin handles POST /delivery/login.
func (s *Server) DeliveryLogin(c echo.Context) error {
	var req loginRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	query, err := queries.NewAuthenticateCourierQuery(req.Username, req.Password)
	if err != nil {
		return err
	}
	courier, err := s.h.AuthenticateCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	token, expires, err := s.deps.Tokens.Issue(courier.ID.String(), auth.RoleDelivery)
	if err != nil {
		return err
	}
	profile := toCourier(courier)
	return c.JSON(http.StatusOK, tokenResponse{Token: token, ExpiresAt: expires, DeliveryBoy: &profile})
}

// CurrentDelivery handles GET /delivery/orders/current. A free courier gets
// a JSON null.
func (s *Server) CurrentDelivery(c echo.Context) error {
	courier, err := courierID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCurrentOrderQuery(courier)
	if err != nil {
		return err
	}
	order, err := s.h.GetCurrentOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if order == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toOrder(*order))
}

// UpdateDeliveryStatus handles PUT /delivery/orders/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	courier, orderID, err := deliveryTarget(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateDeliveryStatusCommand(courier, orderID, req.Status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// SetDeliveryPayment handles PUT /delivery/orders/:id/payment: the courier
// collected the cash.
func (s *Server) SetDeliveryPayment(c echo.Context) error {
	courier, orderID, err := deliveryTarget(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetDeliveryPaymentCommand(courier, orderID)
	if err != nil {
		return err
	}
	if err := s.h.SetDeliveryPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func deliveryTarget(c echo.Context) (kernel.ID, kernel.ID, error) {
	courier, err := courierID(c)
	if err != nil {
		return 0, 0, err
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	return courier, orderID, nil
}

// SubmitFeedback handles POST /api/feedback.
func (s *Server) SubmitFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(req.OrderID)
	if err != nil {
		return err
	}
	courier, err := kernel.NewID(req.DeliveryBoyID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSubmitFeedbackCommand(orderID, courier, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	id, err := s.h.SubmitFeedback.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}
