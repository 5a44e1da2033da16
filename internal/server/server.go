package server

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/simplyzetax/platform"
	"github.com/simplyzetax/platform/internal/config"
	"github.com/simplyzetax/platform/internal/values"
)

// RequestIDHeader carries the id generated for every response
const RequestIDHeader = "X-Request-ID"

type targetResponse struct {
	OS     string   `json:"os"`
	Arch   string   `json:"arch"`
	Active []string `json:"active"`
}

type targetEntry struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Active bool   `json:"active"`
}

// New creates the fiber app serving the compiled target and the resolved
// values of cfg
func New(cfg *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    code,
				"message": utils.StatusMessage(code),
				"error":   err.Error(),
			})
		},
		DisableStartupMessage: true,
	})

	app.Use(requestID)

	app.Get("/target", handleTarget)
	app.Get("/targets", handleTargets)
	app.Get("/values", func(c *fiber.Ctx) error {
		resolved, err := values.ResolveAll(cfg.Values)
		if err != nil {
			return err
		}
		return c.JSON(resolved)
	})
	app.Get("/values/:key", func(c *fiber.Ctx) error {
		key := strings.ToLower(strings.TrimSpace(c.Params("key")))
		value, err := values.Lookup(cfg.Values, key)
		if errors.Is(err, values.ErrUnknownKey) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":    fiber.StatusNotFound,
				"message": utils.StatusMessage(fiber.StatusNotFound),
				"error":   err.Error(),
			})
		}
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"key": key, "value": value})
	})

	return app
}

// Listen serves the app on the configured port
func Listen(cfg *config.AppConfig) error {
	address := ":" + cfg.Server.Port
	log.Infof("🚀 Serving %s/%s on http://localhost%s", platform.OS, platform.Arch, address)
	return New(cfg).Listen(address)
}

// requestID tags each response with a fresh nanoid
func requestID(c *fiber.Ctx) error {
	id, err := gonanoid.New()
	if err != nil {
		log.Warnf("Failed to generate request id: %v", err)
	} else {
		c.Set(RequestIDHeader, id)
	}

	log.Debug("request", "method", c.Method(), "path", c.Path(), "id", id)
	return c.Next()
}

func handleTarget(c *fiber.Ctx) error {
	resp := targetResponse{OS: platform.OS, Arch: platform.Arch, Active: []string{}}
	for _, t := range platform.Current() {
		resp.Active = append(resp.Active, t.Name)
	}
	return c.JSON(resp)
}

func handleTargets(c *fiber.Ctx) error {
	targets := platform.Targets()
	entries := make([]targetEntry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, targetEntry{Name: t.Name, Kind: t.Kind.String(), Active: t.Active})
	}
	return c.JSON(entries)
}
