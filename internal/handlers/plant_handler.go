package handlers

import (
	"log"

	"sapling/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PlantHandler handles the public catalog endpoints.
type PlantHandler struct {
	service *services.PlantService
}

// NewPlantHandler creates a new PlantHandler.
func NewPlantHandler(service *services.PlantService) *PlantHandler {
	return &PlantHandler{
		service: service,
	}
}

// RegisterRoutes registers the public plant routes with the Fiber app.
func (h *PlantHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/plants", h.HandleGetPlants)
	router.Get("/plants/:id", h.HandleGetPlantByID)
}

// HandleGetPlants lists the catalog.
func (h *PlantHandler) HandleGetPlants(c *fiber.Ctx) error {
	plants, err := h.service.GetAllPlants()
	if err != nil {
		log.Printf("Error getting all plants: %v", err)
		return fail(c, err)
	}
	return c.JSON(plants)
}

// HandleGetPlantByID returns a single plant.
func (h *PlantHandler) HandleGetPlantByID(c *fiber.Ctx) error {
	plantID := c.Params("id")
	plant, err := h.service.GetPlantByID(plantID)
	if err != nil {
		log.Printf("Error getting plant by ID %s: %v", plantID, err)
		return fail(c, err)
	}
	return c.JSON(plant)
}
