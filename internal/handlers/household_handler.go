package handlers

import (
	"Stocked/internal/middleware"
	"Stocked/internal/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type HouseholdHandler struct {
	service services.HouseholdService
}

func NewHouseholdHandler(service services.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{service: service}
}

func (h *HouseholdHandler) ListHouseholds(c *fiber.Ctx) error {
	households, err := h.service.GetHouseholdsForUser(middleware.UserID(c))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list households"})
	}
	return c.JSON(households)
}

func (h *HouseholdHandler) CreateHousehold(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	household, err := h.service.CreateHousehold(middleware.UserID(c), name)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(household)
}

func (h *HouseholdHandler) RenameHousehold(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	member, err := h.service.IsMember(middleware.UserID(c), uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	household, err := h.service.RenameHousehold(uint(id), name)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not rename household"})
	}
	if household == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}
	return c.JSON(household)
}

func (h *HouseholdHandler) DeleteHousehold(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}

	member, err := h.service.IsMember(middleware.UserID(c), uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	if err := h.service.DeleteHousehold(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete household"})
	}
	if savedHouseholdID(c) == uint(id) {
		clearActiveHouseholdCookie(c)
	}
	return c.SendStatus(http.StatusNoContent)
}
