package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"devconnect/internal/delivery/http/middleware"
	ucauth "devconnect/internal/usecase/auth"
	"devconnect/internal/validation"
)

type UserHandler struct {
	uc   ucauth.Usecase
	auth fiber.Handler
}

func NewUserHandler(uc ucauth.Usecase, auth fiber.Handler) *UserHandler {
	return &UserHandler{uc: uc, auth: auth}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/test", h.Test)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/current", h.Current, h.auth)
}

func (h *UserHandler) Test(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Users Works"})
}

func (h *UserHandler) Register(c fiber.Ctx) error {
	var req validation.RegisterInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"error": "bad request"}, err)
	}

	if errs, ok := validation.ValidateRegister(req); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, errs, nil)
	}

	usr, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ucauth.ErrEmailTaken) {
			return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"email": "Email already exists"}, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
	}

	return c.JSON(usr)
}

func (h *UserHandler) Login(c fiber.Ctx) error {
	var req validation.LoginInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"error": "bad request"}, err)
	}

	if errs, ok := validation.ValidateLogin(req); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, errs, nil)
	}

	tok, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrEmailNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, fiber.Map{"email": "User not found"}, err)
		case errors.Is(err, ucauth.ErrPasswordMismatch):
			return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"password": "Password incorrect"}, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
		}
	}

	return c.JSON(fiber.Map{"success": true, "token": "Bearer " + tok})
}

func (h *UserHandler) Current(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	usr, err := h.uc.Current(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
	}

	return c.JSON(fiber.Map{
		"id":    usr.ID,
		"name":  usr.Name,
		"email": usr.Email,
	})
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	return id, ok
}
