package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"devconnect/internal/config"
	"devconnect/internal/delivery/http/handler"
	"devconnect/internal/delivery/http/middleware"
	"devconnect/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	return &App{Fiber: f, Container: container}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	authGate := middleware.NewAuthMiddleware(c.Tokens).Middleware()

	registry := routes.NewRegistry(
		handler.NewUserHandler(c.AuthUC, authGate),
		handler.NewProfileHandler(c.ProfileUC, authGate),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
