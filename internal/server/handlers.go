package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"venture-intake/internal/catalog"
	apperrors "venture-intake/internal/common/errors"
	"venture-intake/internal/common/security"
	"venture-intake/internal/form"
	"venture-intake/internal/intake"
	"venture-intake/internal/intake/intro"
	"venture-intake/internal/intake/network"
	"venture-intake/internal/intake/submit"
)

func (s *Server) registerRoutes() {
	s.app.Use(s.requestLogger())
	s.app.Use(s.entryRedirect())

	s.app.Get("/healthz", s.handleHealthz)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/apply", s.handleApplyPage)
	s.app.Get("/network", s.handleNetworkPage)

	api := s.app.Group("/api")
	api.Get("/csrf", s.handleGetCSRF)
	api.Get("/catalog", s.handleGetCatalog)

	guarded := api.Group("", s.originGuard(), s.csrfGuard())
	guarded.Post("/applications", s.handlePostApplication)
	guarded.Post("/network", s.handlePostNetwork)
	guarded.Post("/request-intro", s.handlePostIntro)
}

// handleGetCSRF mints a token, stores it in an HTTP-only cookie and returns
// it so the client can echo it back on submission.
func (s *Server) handleGetCSRF(c *fiber.Ctx) error {
	token, err := security.IssueCSRFToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Could not mint CSRF token",
		})
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.Security.CSRFCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.cfg.Security.CSRFCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"csrfToken": token})
}

// handlePostApplication accepts the multipart application submission: a
// "payload" JSON field plus an optional "deck" PDF.
func (s *Server) handlePostApplication(c *fiber.Ctx) error {
	payloadRaw := c.FormValue("payload")
	if payloadRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Missing payload",
		})
	}
	if err := submit.ValidatePayloadJSON([]byte(payloadRaw)); err != nil {
		return s.rejectStandard(c, apperrors.NewPayloadParseError(err), err.Error())
	}

	var payload intake.ApplicationPayload
	if err := json.Unmarshal([]byte(payloadRaw), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Malformed payload",
		})
	}

	in := &submit.Input{Payload: &payload}
	if fh, err := c.FormFile("deck"); err == nil && fh != nil {
		contentType := fh.Header.Get("Content-Type")
		if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Please upload a PDF",
			})
		}
		file, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Could not read uploaded file",
			})
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Could not read uploaded file",
			})
		}
		in.Deck = &submit.DeckFile{Name: fh.Filename, ContentType: contentType, Data: data}
	}

	// Handler failures are part of the result contract, not transport
	// errors; the response stays 200 with ok=false.
	return c.JSON(s.deps.Submit.Execute(c.Context(), in))
}

// handlePostNetwork accepts a JSON network signup for either role.
func (s *Server) handlePostNetwork(c *fiber.Ctx) error {
	signup, err := network.DecodeSignup(c.Body())
	if err != nil {
		if errors.Is(err, network.ErrInvalidUserType) || errors.Is(err, network.ErrInvalidInvestorType) {
			var head struct {
				UserType string `json:"userType"`
			}
			_ = json.Unmarshal(c.Body(), &head)
			return s.rejectStandard(c, apperrors.NewInvalidUserTypeError(head.UserType), err.Error())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Malformed signup"})
	}

	res := s.deps.Network.Execute(c.Context(), signup)
	if res.OK && s.deps.Notifier != nil {
		s.deps.Notifier.NetworkSignupReceived(c.Context(), string(res.Role), res.ID)
	}
	return c.JSON(res)
}

// handlePostIntro accepts a JSON intro request.
func (s *Server) handlePostIntro(c *fiber.Ctx) error {
	var req intro.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Malformed request",
		})
	}
	return c.JSON(s.deps.Intro.Execute(c.Context(), &req))
}

// handleGetCatalog serves the card inventory and form option lists.
func (s *Server) handleGetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"partners":     catalog.Partners(),
		"bootcamps":    catalog.Bootcamps(),
		"perks":        catalog.Perks(),
		"competitions": catalog.Competitions(),
		"options": fiber.Map{
			"industries":        catalog.IndustryOptions,
			"regions":           catalog.RegionOptions,
			"stages":            catalog.StageOptions,
			"usStates":          catalog.USStateOptions,
			"networkIndustries": catalog.NetworkIndustryOptions,
			"networkStages":     catalog.NetworkStageOptions,
			"fundStages":        catalog.FundStageOptions,
		},
		"maxCompetitions": catalog.MaxCompetitionSelections,
		"selectTheme":     form.DefaultSelectTheme(),
	})
}

// handleApplyPage backs the canonical application entry point. The submitted
// flag reflects the short-lived marker left by a successful submission.
func (s *Server) handleApplyPage(c *fiber.Ctx) error {
	submitted := false
	if s.deps.Redis != nil {
		if v, err := s.deps.Redis.Get(c.Context(), "form:submitted"); err == nil && v == "1" {
			submitted = true
		}
	}
	return c.JSON(fiber.Map{
		"page":      "apply",
		"submitted": submitted,
		"catalog":   "/api/catalog",
	})
}

func (s *Server) handleNetworkPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":    "network",
		"catalog": "/api/catalog",
	})
}

// handleHealthz reports dependency health for load balancer probes.
func (s *Server) handleHealthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := fiber.Map{}

	if s.deps.Postgres != nil {
		if err := s.deps.Postgres.Ping(ctx); err != nil {
			checks["postgres"] = "down"
			status = fiber.StatusServiceUnavailable
		} else {
			checks["postgres"] = "up"
		}
	}
	if s.deps.Redis != nil {
		if err := s.deps.Redis.Ping(ctx); err != nil {
			checks["redis"] = "down"
			status = fiber.StatusServiceUnavailable
		} else {
			checks["redis"] = "up"
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == fiber.StatusOK],
		"checks": checks,
	})
}
