package handlers

import (
	"Stocked/internal/mapper"
	"Stocked/internal/middleware"
	"Stocked/internal/services"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type ItemHandler struct {
	service          services.ItemService
	householdService services.HouseholdService
}

func NewItemHandler(service services.ItemService, householdService services.HouseholdService) *ItemHandler {
	return &ItemHandler{service: service, householdService: householdService}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
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

	var containerID *uint
	if raw := c.Query("container_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid container ID"})
		}
		id := uint(parsed)
		containerID = &id
	}

	items, err := h.service.GetItems(uint(householdID), strings.TrimSpace(c.Query("q")), containerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list items"})
	}
	return c.JSON(mapper.ToItemGetDTOs(items))
}

func (h *ItemHandler) ListTags(c *fiber.Ctx) error {
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

	tags, err := h.service.GetTags(uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list tags"})
	}
	return c.JSON(tags)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	householdID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}

	var req struct {
		Name           string `json:"name"`
		Quantity       int    `json:"quantity"`
		Tags           string `json:"tags"`
		ContainerID    *uint  `json:"container_id"`
		ExpirationDate string `json:"expiration_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}
	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid expiration date"})
	}

	member, err := h.householdService.IsMember(middleware.UserID(c), uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	item, err := h.service.CreateItem(uint(householdID), name, req.Quantity, services.ParseTags(req.Tags), req.ContainerID, expiration)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToItemGetDTO(item))
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		Name           string `json:"name"`
		Quantity       int    `json:"quantity"`
		Tags           string `json:"tags"`
		ContainerID    *uint  `json:"container_id"`
		ExpirationDate string `json:"expiration_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "name is required"})
	}
	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid expiration date"})
	}

	item, err := h.service.GetItemByID(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if item == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), item.HouseholdID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}

	updated, err := h.service.UpdateItem(uint(id), name, req.Quantity, services.ParseTags(req.Tags), req.ContainerID, expiration)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update item"})
	}
	if updated == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	return c.JSON(mapper.ToItemGetDTO(updated))
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.GetItemByID(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if item == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), item.HouseholdID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "item not found"})
	}

	if err := h.service.DeleteItem(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete item"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
