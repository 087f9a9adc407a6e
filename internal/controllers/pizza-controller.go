package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas. Every route is
// scoped to a cafe identified by the cafeName and cafeAddress parameters.
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas of a cafe
	GetAllPizzas(c *gin.Context)
	// GetPizzaByName retrieves a pizza of a cafe by its name
	GetPizzaByName(c *gin.Context)
	// GetPizzaByID retrieves a pizza of a cafe by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza in a cafe
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizzaByName deletes a pizza of a cafe by its name
	DeletePizzaByName(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas of a cafe
// @Description Get a list of all pizzas sold by the cafe
// @Tags pizzas
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Success 200 {array} models.Pizza
// @Success 204 "The list of pizzas is empty"
// @Router /pizza/all/{cafeName}/{cafeAddress} [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListInCafe(ctx.Request.Context(), ctx.Param("cafeName"), ctx.Param("cafeAddress"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByName godoc
// @Summary Get pizza by name
// @Tags pizzas
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Param name path string true "Pizza name"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /pizza/{cafeName}/{cafeAddress}/name/{name} [get]
func (c *controller) GetPizzaByName(ctx *gin.Context) {
	pizza, err := c.service.GetByName(ctx.Request.Context(), ctx.Param("name"), ctx.Param("cafeName"), ctx.Param("cafeAddress"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza of the cafe by its ID
// @Tags pizzas
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /pizza/{cafeName}/{cafeAddress}/id/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	pizza, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("cafeName"), ctx.Param("cafeAddress"), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza in the cafe. Any id in the payload is ignored.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Param pizza body models.Pizza true "Pizza object"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BasicAuth
// @Router /pizza/create/{cafeName}/{cafeAddress} [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	createdPizza, err := c.service.Add(ctx.Request.Context(), pizza, ctx.Param("cafeName"), ctx.Param("cafeAddress"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdPizza)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Update the pizza identified by the id in the payload and attach it to the cafe
// @Tags pizzas
// @Accept json
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Param pizza body models.Pizza true "Pizza object"
// @Success 202 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /pizza/update/{cafeName}/{cafeAddress} [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	updatedPizza, err := c.service.Update(ctx.Request.Context(), pizza, ctx.Param("cafeName"), ctx.Param("cafeAddress"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, updatedPizza)
}

// DeletePizzaByName godoc
// @Summary Delete pizza by name
// @Tags pizzas
// @Produce json
// @Param cafeName path string true "Cafe name"
// @Param cafeAddress path string true "Cafe address"
// @Param name path string true "Pizza name"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /pizza/delete-pizza-by-name/{cafeName}/{cafeAddress}/{name} [delete]
func (c *controller) DeletePizzaByName(ctx *gin.Context) {
	if err := c.service.DeleteByName(ctx.Request.Context(), ctx.Param("cafeName"), ctx.Param("cafeAddress"), ctx.Param("name")); err != nil {
		respondWithError(ctx, err)
		return
	}
	respondMessage(ctx, "Pizza deleted successfully")
}
