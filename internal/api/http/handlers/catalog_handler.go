package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/acest-fitness/gym-service/internal/domain"
	"github.com/acest-fitness/gym-service/internal/repository"
	apperrors "github.com/acest-fitness/gym-service/pkg/util"
)

// CatalogHandler exposes the read-only gym catalog.
type CatalogHandler struct {
	catalog repository.CatalogRepository
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Members handles GET /members. Member ids become string keys.
func (h *CatalogHandler) Members(c *fiber.Ctx) error {
	members, err := h.catalog.ListMembers(c.UserContext())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	out := make(map[string]domain.Member, len(members))
	for id, m := range members {
		out[strconv.Itoa(id)] = m
	}
	return c.JSON(out)
}

// Member handles GET /membership/:id.
func (h *CatalogHandler) Member(c *fiber.Ctx) error {
	raw := c.Params("id")
	if !isDigits(raw) {
		return apperrors.NewNotFound("Member", nil)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return apperrors.NewNotFound("Member", nil)
	}

	member, err := h.catalog.GetMember(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return apperrors.NewNotFound("Member", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return c.JSON(member)
}

// Workouts handles GET /workouts.
func (h *CatalogHandler) Workouts(c *fiber.Ctx) error {
	workouts, err := h.catalog.ListWorkouts(c.UserContext())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(workouts)
}

// Trainers handles GET /trainers.
func (h *CatalogHandler) Trainers(c *fiber.Ctx) error {
	trainers, err := h.catalog.ListTrainers(c.UserContext())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(trainers)
}

// Classes handles GET /classes.
func (h *CatalogHandler) Classes(c *fiber.Ctx) error {
	classes, err := h.catalog.ListClasses(c.UserContext())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(classes)
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signs are not ids.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
