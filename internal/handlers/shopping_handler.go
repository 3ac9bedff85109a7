package handlers

import (
	"Stocked/internal/mapper"
	"Stocked/internal/middleware"
	"Stocked/internal/services"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ShoppingHandler struct {
	service          services.ShoppingService
	householdService services.HouseholdService
}

func NewShoppingHandler(service services.ShoppingService, householdService services.HouseholdService) *ShoppingHandler {
	return &ShoppingHandler{service: service, householdService: householdService}
}

func (h *ShoppingHandler) ListEntries(c *fiber.Ctx) error {
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

	entries, err := h.service.GetEntries(uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list shopping entries"})
	}
	return c.JSON(entries)
}

func (h *ShoppingHandler) AddEntry(c *fiber.Ctx) error {
	householdID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid household ID"})
	}

	var req struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "item_name is required"})
	}

	member, err := h.householdService.IsMember(middleware.UserID(c), uint(householdID))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	entry, err := h.service.AddEntry(uint(householdID), itemName, req.Quantity)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

func (h *ShoppingHandler) SetChecked(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid entry ID"})
	}

	var req struct {
		Checked bool `json:"checked"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if ok, err := h.guardEntry(c, uint(id)); !ok {
		return err
	}

	entry, err := h.service.SetChecked(uint(id), req.Checked)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "entry not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update entry"})
	}
	return c.JSON(entry)
}

func (h *ShoppingHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid entry ID"})
	}

	if ok, err := h.guardEntry(c, uint(id)); !ok {
		return err
	}

	if err := h.service.DeleteEntry(uint(id)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not delete entry"})
	}
	return c.SendStatus(http.StatusNoContent)
}

// Complete converts a shopping entry into inventory, merging with a
// same-named item when one exists.
func (h *ShoppingHandler) Complete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid entry ID"})
	}

	var req struct {
		Quantity       int    `json:"quantity"`
		ExpirationDate string `json:"expiration_date"`
		Tags           string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid expiration date"})
	}

	if ok, err := h.guardEntry(c, uint(id)); !ok {
		return err
	}

	item, err := h.service.Complete(uint(id), services.CompletionOverride{
		Quantity:       req.Quantity,
		ExpirationDate: expiration,
		Tags:           services.ParseTags(req.Tags),
	})
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "entry not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not complete entry"})
	}
	return c.JSON(mapper.ToItemGetDTO(item))
}

// guardEntry answers 404 when the entry does not exist or belongs to a
// household the user is not a member of. The caller proceeds only when ok is
// true; otherwise the response has already been written.
func (h *ShoppingHandler) guardEntry(c *fiber.Ctx, id uint) (bool, error) {
	entry, err := h.service.GetEntryByID(id)
	if err != nil {
		return false, c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if entry == nil {
		return false, c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "entry not found"})
	}
	member, err := h.householdService.IsMember(middleware.UserID(c), entry.HouseholdID)
	if err != nil {
		return false, c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return false, c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "entry not found"})
	}
	return true, nil
}
