package handlers

import (
	"Stocked/internal/models"
	"Stocked/internal/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) GetEntries(householdID uint) ([]models.ShoppingEntry, error) {
	args := m.Called(householdID)
	return args.Get(0).([]models.ShoppingEntry), args.Error(1)
}

func (m *MockShoppingService) GetEntryByID(id uint) (*models.ShoppingEntry, error) {
	args := m.Called(id)
	entry, _ := args.Get(0).(*models.ShoppingEntry)
	return entry, args.Error(1)
}

func (m *MockShoppingService) AddEntry(householdID uint, itemName string, quantity int) (*models.ShoppingEntry, error) {
	args := m.Called(householdID, itemName, quantity)
	return args.Get(0).(*models.ShoppingEntry), args.Error(1)
}

func (m *MockShoppingService) SetChecked(id uint, checked bool) (*models.ShoppingEntry, error) {
	args := m.Called(id, checked)
	entry, _ := args.Get(0).(*models.ShoppingEntry)
	return entry, args.Error(1)
}

func (m *MockShoppingService) DeleteEntry(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockShoppingService) Complete(id uint, override services.CompletionOverride) (*models.Item, error) {
	args := m.Called(id, override)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

type MockHouseholdService struct {
	mock.Mock
}

func (m *MockHouseholdService) GetHouseholdsForUser(userID string) ([]models.Household, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Household), args.Error(1)
}

func (m *MockHouseholdService) GetHouseholdByID(id uint) (*models.Household, error) {
	args := m.Called(id)
	household, _ := args.Get(0).(*models.Household)
	return household, args.Error(1)
}

func (m *MockHouseholdService) CreateHousehold(userID, name string) (*models.Household, error) {
	args := m.Called(userID, name)
	return args.Get(0).(*models.Household), args.Error(1)
}

func (m *MockHouseholdService) RenameHousehold(id uint, name string) (*models.Household, error) {
	args := m.Called(id, name)
	household, _ := args.Get(0).(*models.Household)
	return household, args.Error(1)
}

func (m *MockHouseholdService) DeleteHousehold(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockHouseholdService) EnsureDefault(userID, email string) (*models.Household, error) {
	args := m.Called(userID, email)
	household, _ := args.Get(0).(*models.Household)
	return household, args.Error(1)
}

func (m *MockHouseholdService) IsMember(userID string, householdID uint) (bool, error) {
	args := m.Called(userID, householdID)
	return args.Bool(0), args.Error(1)
}

// signedIn injects the user identity the auth middleware would set.
func signedIn(userID, email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_email", email)
		return c.Next()
	}
}

func TestShoppingHandler_Complete_Merged(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Post("/shopping/:id/complete", handler.Complete)

	entry := &models.ShoppingEntry{BaseModel: models.BaseModel{ID: 5}, HouseholdID: 1, ItemName: "Milk", Quantity: 2}
	four := 4
	item := &models.Item{BaseModel: models.BaseModel{ID: 9}, HouseholdID: 1, Name: "Milk", Quantity: &four}
	mockService.On("GetEntryByID", uint(5)).Return(entry, nil)
	mockHouseholds.On("IsMember", "user-1", uint(1)).Return(true, nil)
	mockService.On("Complete", uint(5), services.CompletionOverride{
		Quantity: 1,
		Tags:     []string{"dairy"},
	}).Return(item, nil)

	reqBody, _ := json.Marshal(map[string]interface{}{
		"quantity": 1,
		"tags":     "dairy",
	})
	req := httptest.NewRequest(http.MethodPost, "/shopping/5/complete", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(4), body["quantity"])
	mockService.AssertExpectations(t)
	mockHouseholds.AssertExpectations(t)
}

func TestShoppingHandler_Complete_EntryGone(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Post("/shopping/:id/complete", handler.Complete)

	mockService.On("GetEntryByID", uint(5)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/shopping/5/complete", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestShoppingHandler_Complete_NonMemberGets404(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-2", "bob@example.com"))
	app.Post("/shopping/:id/complete", handler.Complete)

	entry := &models.ShoppingEntry{BaseModel: models.BaseModel{ID: 5}, HouseholdID: 1, ItemName: "Milk", Quantity: 2}
	mockService.On("GetEntryByID", uint(5)).Return(entry, nil)
	mockHouseholds.On("IsMember", "user-2", uint(1)).Return(false, nil)

	req := httptest.NewRequest(http.MethodPost, "/shopping/5/complete", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestShoppingHandler_Complete_BadDate(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Post("/shopping/:id/complete", handler.Complete)

	reqBody, _ := json.Marshal(map[string]interface{}{"expiration_date": "24/12/2026"})
	req := httptest.NewRequest(http.MethodPost, "/shopping/5/complete", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShoppingHandler_AddEntry(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Post("/households/:id/shopping", handler.AddEntry)

	entry := &models.ShoppingEntry{BaseModel: models.BaseModel{ID: 1}, HouseholdID: 1, ItemName: "Milk", Quantity: 2}
	mockHouseholds.On("IsMember", "user-1", uint(1)).Return(true, nil)
	mockService.On("AddEntry", uint(1), "Milk", 2).Return(entry, nil)

	reqBody, _ := json.Marshal(map[string]interface{}{"item_name": " Milk ", "quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/households/1/shopping", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestShoppingHandler_AddEntry_BlankName(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Post("/households/:id/shopping", handler.AddEntry)

	reqBody, _ := json.Marshal(map[string]interface{}{"item_name": "   "})
	req := httptest.NewRequest(http.MethodPost, "/households/1/shopping", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestShoppingHandler_DeleteEntry(t *testing.T) {
	app := fiber.New()
	mockService := new(MockShoppingService)
	mockHouseholds := new(MockHouseholdService)
	handler := NewShoppingHandler(mockService, mockHouseholds)

	app.Use(signedIn("user-1", "anna@example.com"))
	app.Delete("/shopping/:id", handler.DeleteEntry)

	entry := &models.ShoppingEntry{BaseModel: models.BaseModel{ID: 4}, HouseholdID: 1, ItemName: "Milk", Quantity: 1}
	mockService.On("GetEntryByID", uint(4)).Return(entry, nil)
	mockHouseholds.On("IsMember", "user-1", uint(1)).Return(true, nil)
	mockService.On("DeleteEntry", uint(4)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/shopping/4", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockService.AssertExpectations(t)
}
