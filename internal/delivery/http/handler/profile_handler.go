package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"devconnect/internal/delivery/http/middleware"
	domain "devconnect/internal/domain/profile"
	ucprofile "devconnect/internal/usecase/profile"
	"devconnect/internal/validation"
)

type ProfileHandler struct {
	uc   ucprofile.Usecase
	auth fiber.Handler
}

func NewProfileHandler(uc ucprofile.Usecase, auth fiber.Handler) *ProfileHandler {
	return &ProfileHandler{uc: uc, auth: auth}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/test", h.Test)
	r.Get("/all", h.All)
	r.Get("/handle/:handle", h.ByHandle)
	r.Get("/user/:user_id", h.ByUserID)

	r.Get("/", h.Mine, h.auth)
	r.Post("/", h.Upsert, h.auth)
	r.Post("/experience", h.AddExperience, h.auth)
	r.Post("/education", h.AddEducation, h.auth)
	r.Delete("/experience/:exp_id", h.RemoveExperience, h.auth)
	r.Delete("/education/:edu_id", h.RemoveEducation, h.auth)
	r.Delete("/", h.DeleteAccount, h.auth)
}

func (h *ProfileHandler) Test(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Profile Works"})
}

func (h *ProfileHandler) Mine(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	p, err := h.uc.GetByUser(c.Context(), userID)
	if err != nil {
		return noProfileError(err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) All(c fiber.Ctx) error {
	all, err := h.uc.ListAll(c.Context())
	if err != nil {
		if errors.Is(err, ucprofile.ErrNoProfile) {
			return middleware.NewAppError(fiber.StatusNotFound, fiber.Map{"noprofile": "There are no profiles"}, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
	}
	return c.JSON(all)
}

func (h *ProfileHandler) ByHandle(c fiber.Ctx) error {
	p, err := h.uc.GetByHandle(c.Context(), c.Params("handle"))
	if err != nil {
		return noProfileError(err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) ByUserID(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		// Malformed ids look the same as unknown ones to the client.
		return middleware.NewAppError(fiber.StatusNotFound, noProfileBody(), err)
	}

	p, err := h.uc.GetByUser(c.Context(), userID)
	if err != nil {
		return noProfileError(err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	var req validation.ProfileInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"error": "bad request"}, err)
	}

	if errs, ok := validation.ValidateProfile(req); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, errs, nil)
	}

	p, err := h.uc.Upsert(c.Context(), userID, patchFromInput(req))
	if err != nil {
		if errors.Is(err, ucprofile.ErrHandleTaken) {
			return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"handle": "That handle already exists"}, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) AddExperience(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	var req validation.ExperienceInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"error": "bad request"}, err)
	}

	if errs, ok := validation.ValidateExperience(req); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, errs, nil)
	}

	p, err := h.uc.AddExperience(c.Context(), userID, domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return noProfileError(err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) AddEducation(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	var req validation.EducationInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, fiber.Map{"error": "bad request"}, err)
	}

	if errs, ok := validation.ValidateEducation(req); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, errs, nil)
	}

	p, err := h.uc.AddEducation(c.Context(), userID, domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return noProfileError(err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) RemoveExperience(c fiber.Ctx) error {
	return h.removeEntry(c, "exp_id", h.uc.RemoveExperience)
}

func (h *ProfileHandler) RemoveEducation(c fiber.Ctx) error {
	return h.removeEntry(c, "edu_id", h.uc.RemoveEducation)
}

type removeFunc func(ctx context.Context, userID, entryID uuid.UUID) (domain.Profile, error)

func (h *ProfileHandler) removeEntry(c fiber.Ctx, param string, remove removeFunc) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	entryID, err := uuid.Parse(c.Params(param))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, noProfileBody(), err)
	}

	p, err := remove(c.Context(), userID, entryID)
	if err != nil {
		// Store failures on removal answer 404, matching the upstream API.
		return middleware.NewAppError(fiber.StatusNotFound, noProfileBody(), err)
	}
	return c.JSON(p)
}

func (h *ProfileHandler) DeleteAccount(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, fiber.Map{"error": "Unauthorized"}, nil)
	}

	if err := h.uc.DeleteUserAndProfile(c.Context(), userID); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func patchFromInput(in validation.ProfileInput) domain.Patch {
	patch := domain.Patch{
		Handle: &in.Handle,
		Status: &in.Status,
		Skills: strings.Split(in.Skills, ","),
	}

	optional(&patch.Company, in.Company)
	optional(&patch.Website, in.Website)
	optional(&patch.Location, in.Location)
	optional(&patch.Bio, in.Bio)
	optional(&patch.GithubUsername, in.GithubUsername)

	optional(&patch.Social.Youtube, in.Youtube)
	optional(&patch.Social.Twitter, in.Twitter)
	optional(&patch.Social.Facebook, in.Facebook)
	optional(&patch.Social.Linkedin, in.Linkedin)
	optional(&patch.Social.Instagram, in.Instagram)

	return patch
}

func optional(dst **string, value string) {
	if strings.TrimSpace(value) != "" {
		v := value
		*dst = &v
	}
}

func noProfileBody() fiber.Map {
	return fiber.Map{"noprofile": "There is no profile for this user"}
}

func noProfileError(err error) error {
	if errors.Is(err, ucprofile.ErrNoProfile) {
		return middleware.NewAppError(fiber.StatusNotFound, noProfileBody(), err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, nil, err)
}
