package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const adminSubject = "admin"

// AdminLogin handles POST /admin/login.
func (s *Server) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	if err := s.deps.Admin.Check(s.deps.Hasher, req.Username, req.Password); err != nil {
		return err
	}

	token, expires, err := s.deps.Tokens.Issue(adminSubject, auth.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token, ExpiresAt: expires})
}

// Dashboard handles GET /admin/dashboard.
func (s *Server) Dashboard(c echo.Context) error {
	stats, err := s.h.DashboardStats.Handle(c.Request().Context(), queries.NewDashboardStatsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		TotalOrders:  stats.TotalOrders,
		TotalRevenue: price(stats.TotalRevenue),
	})
}

// ListOrders handles GET /admin/orders, newest first.
func (s *Server) ListOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListOrdersQuery())
}

// RecentOrders handles GET /admin/orders/recent?limit=.
func (s *Server) RecentOrders(c echo.Context) error {
	limit := int64(queries.DefaultRecentOrdersLimit)
	raw, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	if raw != nil {
		limit = *raw
	}

	query, err := queries.NewRecentOrdersQuery(int(limit))
	if err != nil {
		return err
	}
	return s.listOrders(c, query)
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(orders))
}

// ListCouriers handles GET /admin/delivery-boys.
func (s *Server) ListCouriers(c echo.Context) error {
	couriers, err := s.h.ListCouriers.Handle(c.Request().Context(), queries.NewListCouriersQuery())
	if err != nil {
		return err
	}
	out := make([]courierResponse, len(couriers))
	for i, v := range couriers {
		out[i] = toCourier(v)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateCourier handles POST /admin/delivery-boys.
func (s *Server) CreateCourier(c echo.Context) error {
	var req createCourierRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateCourierCommand(req.Username, req.Password, req.Name, req.Phone)
	if err != nil {
		return err
	}
	id, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// AssignOrder handles PUT /admin/delivery-boys/:id/assign-order.
func (s *Server) AssignOrder(c echo.Context) error {
	courier, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignOrderRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(req.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(courier, orderID)
	if err != nil {
		return err
	}
	if err := s.h.AssignOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CreateCategory handles POST /admin/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateCategoryCommand(req.Name, req.Description)
	if err != nil {
		return err
	}
	id, err := s.h.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// CreateMedicine handles POST /admin/medicines.
func (s *Server) CreateMedicine(c echo.Context) error {
	var req createMedicineRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	categoryID, err := kernel.NewID(req.CategoryID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateMedicineCommand(req.Name, req.Description, categoryID, req.Price, req.Stock)
	if err != nil {
		return err
	}
	id, err := s.h.CreateMedicine.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateMedicine handles PATCH /admin/medicines/:id.
func (s *Server) UpdateMedicine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateMedicineRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	changes := commands.MedicineChanges{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if req.CategoryID != nil {
		categoryID, err := kernel.NewID(*req.CategoryID)
		if err != nil {
			return err
		}
		changes.CategoryID = &categoryID
	}

	cmd, err := commands.NewUpdateMedicineCommand(id, changes)
	if err != nil {
		return err
	}
	if err := s.h.UpdateMedicine.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListFeedbacks handles GET /admin/feedbacks.
func (s *Server) ListFeedbacks(c echo.Context) error {
	feedbacks, err := s.h.ListFeedbacks.Handle(c.Request().Context(), queries.NewListFeedbacksQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFeedbacks(feedbacks))
}
