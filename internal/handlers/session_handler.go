package handlers

import (
	"Stocked/internal/middleware"
	"Stocked/internal/services"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// activeHouseholdCookie persists the user's household selection between
// visits, the server-side stand-in for the browser's local storage key.
const activeHouseholdCookie = "current_household_id"

type SessionHandler struct {
	householdService services.HouseholdService
}

func NewSessionHandler(householdService services.HouseholdService) *SessionHandler {
	return &SessionHandler{householdService: householdService}
}

// GetSession bootstraps the signed-in user: guarantees a first household
// exists, lists memberships, and resolves the active household from the
// persisted selection.
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	email := middleware.UserEmail(c)

	if _, err := h.householdService.EnsureDefault(userID, email); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	households, err := h.householdService.GetHouseholdsForUser(userID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}

	active := services.ResolveActive(savedHouseholdID(c), households)
	var activeID uint
	if active != nil {
		activeID = active.ID
	}

	return c.JSON(map[string]interface{}{
		"user_id":             userID,
		"email":               email,
		"households":          households,
		"active_household_id": activeID,
	})
}

// GetActiveHousehold resolves the current selection without bootstrapping.
func (h *SessionHandler) GetActiveHousehold(c *fiber.Ctx) error {
	households, err := h.householdService.GetHouseholdsForUser(middleware.UserID(c))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	active := services.ResolveActive(savedHouseholdID(c), households)
	if active == nil {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "no households"})
	}
	return c.JSON(map[string]interface{}{"household_id": active.ID})
}

// SetActiveHousehold persists a new selection after confirming membership.
func (h *SessionHandler) SetActiveHousehold(c *fiber.Ctx) error {
	var req struct {
		HouseholdID uint `json:"household_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.HouseholdID == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "household_id is required"})
	}

	member, err := h.householdService.IsMember(middleware.UserID(c), req.HouseholdID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	if !member {
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "household not found"})
	}

	setActiveHouseholdCookie(c, req.HouseholdID)
	return c.SendStatus(http.StatusNoContent)
}

func savedHouseholdID(c *fiber.Ctx) uint {
	saved := c.Cookies(activeHouseholdCookie)
	if saved == "" {
		return 0
	}
	id, err := strconv.ParseUint(saved, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func setActiveHouseholdCookie(c *fiber.Ctx, householdID uint) {
	c.Cookie(&fiber.Cookie{
		Name:     activeHouseholdCookie,
		Value:    strconv.FormatUint(uint64(householdID), 10),
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearActiveHouseholdCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     activeHouseholdCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
