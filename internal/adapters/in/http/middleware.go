package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/auth"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const claimsKey = "auth.claims"

// instrument logs each request and records its metrics. The request context
// carries a logger tagged with the request id.
func (s *Server) instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		logger := s.logger.With().Str("request_id", requestID).Logger()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

		if err := next(c); err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		elapsed := time.Since(start)
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		if m := s.deps.Metrics; m != nil {
			m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(elapsed.Microseconds()) / 1000)
		}

		logger.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("request")
		return nil
	}
}

func (s *Server) requestLogger(c echo.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request().Context())
}

// requireRole rejects requests without a valid bearer token for role.
func (s *Server) requireRole(role auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized)
			}

			claims, err := s.deps.Tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				return err
			}
			if claims.Role != role {
				return fmt.Errorf("%w: route requires role %s", errs.ErrForbidden, role)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// courierID returns the courier behind a delivery token.
func courierID(c echo.Context) (kernel.ID, error) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	if !ok {
		return 0, errs.ErrUnauthorized
	}
	id, err := kernel.ParseID(claims.Subject)
	if err != nil {
		return 0, fmt.Errorf("%w: token subject is not a courier", errs.ErrUnauthorized)
	}
	return id, nil
}
