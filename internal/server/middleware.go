package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "venture-intake/internal/common/errors"
	"venture-intake/internal/common/security"
)

// requestLogger logs every request with method, path, status and latency.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()
		s.logger.Info("request", map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return err
	}
}

// originGuard rejects requests whose Origin header is not on the allow-list.
// X-Forwarded-Origin is honored for proxied deployments.
func (s *Server) originGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			origin = c.Get("X-Forwarded-Origin")
		}
		if !s.origin.Allowed(origin) {
			return s.rejectStandard(c, apperrors.NewOriginNotAllowedError(origin), "Disallowed origin")
		}
		return c.Next()
	}
}

// csrfGuard compares the submitted token against the cookie in constant
// time. The token may arrive as a form field or the X-CSRF-Token header.
func (s *Server) csrfGuard() fiber.Handler {
	cookieName := s.cfg.Security.CSRFCookieName
	return func(c *fiber.Ctx) error {
		submitted := c.FormValue("csrfToken")
		if submitted == "" {
			submitted = c.Get("X-CSRF-Token")
		}
		if err := security.ValidateCSRFToken(c.Cookies(cookieName), submitted); err != nil {
			return s.rejectStandard(c, apperrors.NewCSRFInvalidError(err.Error()), "Invalid CSRF token")
		}
		return c.Next()
	}
}

// rejectStandard logs and answers a coded rejection before business logic
// runs. Trust failures answer 403, everything else 400.
func (s *Server) rejectStandard(c *fiber.Ctx, stdErr *apperrors.StandardError, message string) error {
	s.logger.Warn(stdErr.Message, map[string]interface{}{
		"code":     string(stdErr.Code),
		"category": apperrors.GetErrorCategory(stdErr.Code),
		"details":  stdErr.Details,
		"path":     c.Path(),
	})
	status := fiber.StatusBadRequest
	if apperrors.IsSecurityError(stdErr.Code) {
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":    false,
		"code":  string(stdErr.Code),
		"error": message,
	})
}

// entryRedirect funnels every GET outside the API to one of the two
// canonical entry points. Unknown paths land on /apply.
func (s *Server) entryRedirect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if c.Method() != fiber.MethodGet ||
			strings.HasPrefix(path, "/api") ||
			path == "/healthz" || path == "/metrics" ||
			path == "/apply" || path == "/network" ||
			strings.Contains(path, ".") {
			return c.Next()
		}
		target := "/apply"
		if qs := string(c.Request().URI().QueryString()); qs != "" {
			target += "?" + qs
		}
		return c.Redirect(target, fiber.StatusTemporaryRedirect)
	}
}
