package http

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID binds a required integer path parameter.
func pathID(c echo.Context, name string) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}

// queryInt binds an optional integer query parameter; nil when absent.
func queryInt(c echo.Context, name string) (*int64, error) {
	var v *int64
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// bind decodes the body by content type (JSON, form or multipart) and runs
// the struct's validate tags.
func (s *Server) bind(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
