package http

import (
	"context"
	_ "embed"
	"net/http"
	"sort"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const healthTimeout = 2 * time.Second

func loadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// OpenAPI handles GET /openapi.yaml.
func (s *Server) OpenAPI(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openAPIDocument)
}

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health. It answers 503 when any backing service fails
// its ping.
func (s *Server) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(s.deps.Pingers))
	for name := range s.deps.Pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Services: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := s.deps.Pingers[name].Ping(ctx); err != nil {
			s.requestLogger(c).Warn().Err(err).Str("service", name).Msg("health check failed")
			resp.Services[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Services[name] = "up"
	}
	return c.JSON(status, resp)
}
