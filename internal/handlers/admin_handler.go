package handlers

import (
	"log"

	"sapling/internal/models"
	"sapling/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin-only management endpoints. The admin-role
// middleware guards every route registered here.
type AdminHandler struct {
	authService  *services.AuthService
	plantService *services.PlantService
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *services.AuthService, plantService *services.PlantService) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		plantService: plantService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListUsers)
	router.Post("/plants", h.HandleCreatePlant)
	router.Put("/plants/:id", h.HandleUpdatePlant)
	router.Delete("/plants/:id", h.HandleDeletePlant)
}

// HandleListUsers lists every account. Password hashes are excluded from the
// JSON encoding at the model level.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return fail(c, err)
	}
	return c.JSON(users)
}

// HandleCreatePlant adds a plant to the catalog.
func (h *AdminHandler) HandleCreatePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := c.BodyParser(&plant); err != nil {
		log.Printf("Error parsing create-plant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(plant); err != nil {
		return failValidation(c, err)
	}

	if err := h.plantService.CreatePlant(&plant); err != nil {
		log.Printf("Error creating plant: %v", err)
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plant)
}

// HandleUpdatePlant updates an existing plant.
func (h *AdminHandler) HandleUpdatePlant(c *fiber.Ctx) error {
	var plant models.Plant
	if err := c.BodyParser(&plant); err != nil {
		log.Printf("Error parsing update-plant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	plant.ID = c.Params("id")

	if err := h.validate.Struct(plant); err != nil {
		return failValidation(c, err)
	}

	if err := h.plantService.UpdatePlant(&plant); err != nil {
		log.Printf("Error updating plant %s: %v", plant.ID, err)
		return fail(c, err)
	}

	return c.JSON(plant)
}

// HandleDeletePlant removes a plant from the catalog. Cart lines referencing
// it surface as depleted on the next read.
func (h *AdminHandler) HandleDeletePlant(c *fiber.Ctx) error {
	plantID := c.Params("id")
	if err := h.plantService.DeletePlant(plantID); err != nil {
		log.Printf("Error deleting plant %s: %v", plantID, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Plant removed",
	})
}
