package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	prescriptionField     = "prescription"
	defaultMaxUploadBytes = 10 << 20
	sniffLen              = 512
)

// Prescription uploads are identified by content, not by file name.
var prescriptionTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// CreateOrder handles POST /order. The body is JSON, or multipart form data
// with an optional prescription file.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	medicineID, err := kernel.NewID(req.MedicineID)
	if err != nil {
		return err
	}

	image, err := s.savePrescription(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.Address, req.Phone, medicineID, req.Quantity, image)
	if err != nil {
		return err
	}
	orderID, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.Orders.WithLabelValues("api").Inc()
	}
	return c.JSON(http.StatusCreated, orderCreatedResponse{Success: true, OrderID: orderID})
}

// savePrescription stores the uploaded prescription and returns its
// reference, or "" when the request carries none.
func (s *Server) savePrescription(c echo.Context) (string, error) {
	if !isMultipart(c) {
		return "", nil
	}
	header, err := c.FormFile(prescriptionField)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(prescriptionField, err)
	}

	file, err := header.Open()
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(prescriptionField, err)
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errs.NewValueIsInvalidErrorWithCause(prescriptionField, err)
	}
	head = head[:n]

	ext, ok := prescriptionTypes[http.DetectContentType(head)]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(prescriptionField,
			errors.New("only JPEG, PNG or PDF files are accepted"))
	}
	return s.deps.Images.Save(c.Request().Context(), ext, io.MultiReader(bytes.NewReader(head), file))
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// GetOrder handles GET /order/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	order, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(order))
}

// ModifyOrder handles PATCH /order/:id. Only fields present in the body change.
func (s *Server) ModifyOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req modifyOrderRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	changes := commands.OrderChanges{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Quantity:     req.Quantity,
	}
	if req.MedicineID != nil {
		medicineID, err := kernel.NewID(*req.MedicineID)
		if err != nil {
			return err
		}
		changes.MedicineID = &medicineID
	}

	cmd, err := commands.NewModifyOrderCommand(id, changes)
	if err != nil {
		return err
	}
	if err := s.h.ModifyOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteOrder handles DELETE /order/:id and returns the reserved stock.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UpdateOrderStatus handles PUT /order/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// VerifyPrescription handles PUT /order/:id/verify-prescription.
func (s *Server) VerifyPrescription(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewVerifyPrescriptionCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.VerifyPrescription.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// SetPaymentStatus handles PUT /order/:id/payment-status.
func (s *Server) SetPaymentStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentStatusRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSetPaymentStatusCommand(id, req.PaymentStatus)
	if err != nil {
		return err
	}
	if err := s.h.SetPaymentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CancelOrder handles PUT /order/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
