package routes

import (
	"github.com/gofiber/fiber/v3"

	"devconnect/internal/delivery/http/handler"
)

type Registry struct {
	health  *handler.HealthHandler
	users   *handler.UserHandler
	profile *handler.ProfileHandler
	posts   *handler.PostHandler
}

func NewRegistry(users *handler.UserHandler, profile *handler.ProfileHandler) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(),
		users:   users,
		profile: profile,
		posts:   handler.NewPostHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.users.RegisterRoutes(api.Group("/users"))
	r.profile.RegisterRoutes(api.Group("/profile"))
	r.posts.RegisterRoutes(api.Group("/posts"))
}
