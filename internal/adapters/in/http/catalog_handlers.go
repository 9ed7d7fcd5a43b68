package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListCategories handles GET /categories.
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.h.ListCategories.Handle(c.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategories(categories))
}

// ListMedicines handles GET /medicines with an optional categoryId filter.
func (s *Server) ListMedicines(c echo.Context) error {
	raw, err := queryInt(c, "categoryId")
	if err != nil {
		return err
	}

	var categoryID *kernel.ID
	if raw != nil {
		id, err := kernel.NewID(*raw)
		if err != nil {
			return err
		}
		categoryID = &id
	}
	return s.listMedicines(c, categoryID)
}

// ListMedicinesByCategory handles GET /medicines/:categoryId.
func (s *Server) ListMedicinesByCategory(c echo.Context) error {
	id, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}
	return s.listMedicines(c, &id)
}

func (s *Server) listMedicines(c echo.Context, categoryID *kernel.ID) error {
	query, err := queries.NewListMedicinesQuery(categoryID)
	if err != nil {
		return err
	}
	medicines, err := s.h.ListMedicines.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMedicines(medicines))
}

// GetMedicine handles GET /medicine/:id.
func (s *Server) GetMedicine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetMedicineQuery(id)
	if err != nil {
		return err
	}
	medicine, err := s.h.GetMedicine.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMedicine(medicine))
}

// CheckAvailability handles GET /availability/:id. Unknown medicines are
// reported as unavailable.
func (s *Server) CheckAvailability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewCheckAvailabilityQuery(id)
	if err != nil {
		return err
	}
	available, err := s.h.CheckAvailability.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, availabilityResponse{Available: available})
}
