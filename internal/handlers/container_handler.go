package handlers

import (
	"Stocked/internal/middleware"
	"Stocked/internal/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ContainerHandler struct {
	service          services.ContainerService
	householdService services.HouseholdService
}

func NewContainerHandler(service services.ContainerService, householdService services.HouseholdService) *ContainerHandler {
	return &ContainerHandler{service: service, householdService: householdService}
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	householdID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	containers, err := h.service.GetContainers(uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list containers"})
	}
	return c.JSON(containers)
}

func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	householdID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Color    string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	member, err := h.householdService.IsMember(middleware.UserID(c), uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	container, err := h.service.CreateContainer(uint(householdID), name, optionalString(req.Location), optionalString(req.Color))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(container)
}

func (h *ContainerHandler) UpdateContainer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
	}

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Color    string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}

	container, err := h.service.GetContainerByID(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if container == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "container not found"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), container.HouseholdID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "container not found"})
	}

	updated, err := h.service.UpdateContainer(uint(id), name, optionalString(req.Location), optionalString(req.Color))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update container"})
	}
	return c.JSON(updated)
}

func (h *ContainerHandler) DeleteContainer(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
	}

	container, err := h.service.GetContainerByID(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if container == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "container not found"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), container.HouseholdID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "container not found"})
	}

	if err := h.service.DeleteContainer(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete container"})
	}
	return c.SendStatus(http.StatusNoContent)
}

// optionalString maps a blank form field to nil so the column is cleared
// rather than stored as an empty string.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
