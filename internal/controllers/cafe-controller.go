package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CafeController handles HTTP requests related to cafes
type CafeController interface {
	// GetAllCafes retrieves all cafes
	GetAllCafes(c *gin.Context)
	// GetCafeChain retrieves every cafe sharing a name
	GetCafeChain(c *gin.Context)
	// GetCafeByID retrieves a cafe by its ID
	GetCafeByID(c *gin.Context)
	// GetCafeByNameAndAddress retrieves a cafe by its name and address
	GetCafeByNameAndAddress(c *gin.Context)
	// CreateCafe creates a new cafe
	CreateCafe(c *gin.Context)
	// UpdateCafe updates an existing cafe
	UpdateCafe(c *gin.Context)
	// DeleteCafeByID deletes a cafe by its ID
	DeleteCafeByID(c *gin.Context)
	// DeleteCafeChain deletes every cafe sharing a name
	DeleteCafeChain(c *gin.Context)
	// DeleteCafeByNameAndAddress deletes a cafe by its name and address
	DeleteCafeByNameAndAddress(c *gin.Context)
}

type cafeController struct {
	service services.CafeService
}

// NewCafeController creates a new instance of CafeController
func NewCafeController(service services.CafeService) CafeController {
	return &cafeController{service: service}
}

// GetAllCafes godoc
// @Summary Get all cafes
// @Description Get a list of all cafes
// @Tags cafes
// @Produce json
// @Success 200 {array} models.Cafe
// @Success 204 "The list of cafes is empty"
// @Router /cafe/all [get]
func (c *cafeController) GetAllCafes(ctx *gin.Context) {
	cafes, err := c.service.ListAll(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cafes)
}

// GetCafeChain godoc
// @Summary Get a cafe chain
// @Description Get every cafe sharing the given name
// @Tags cafes
// @Produce json
// @Param name path string true "Cafe name"
// @Success 200 {array} models.Cafe
// @Success 204 "No cafe with this name"
// @Failure 401 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/chain/{name} [get]
func (c *cafeController) GetCafeChain(ctx *gin.Context) {
	cafes, err := c.service.ListChain(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cafes)
}

// GetCafeByID godoc
// @Summary Get cafe by ID
// @Tags cafes
// @Produce json
// @Param id path int true "Cafe ID"
// @Success 200 {object} models.Cafe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/id/{id} [get]
func (c *cafeController) GetCafeByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	cafe, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cafe)
}

// GetCafeByNameAndAddress godoc
// @Summary Get cafe by name and address
// @Tags cafes
// @Produce json
// @Param name path string true "Cafe name"
// @Param address path string true "Cafe address"
// @Success 200 {object} models.Cafe
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/name-address/{name}/{address} [get]
func (c *cafeController) GetCafeByNameAndAddress(ctx *gin.Context) {
	cafe, err := c.service.GetByNameAndAddress(ctx.Request.Context(), ctx.Param("name"), ctx.Param("address"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cafe)
}

// CreateCafe godoc
// @Summary Create a new cafe
// @Description Create a new cafe. Any id in the payload is ignored.
// @Tags cafes
// @Accept json
// @Produce json
// @Param cafe body models.Cafe true "Cafe object"
// @Success 201 {object} models.Cafe
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/create [post]
func (c *cafeController) CreateCafe(ctx *gin.Context) {
	var cafe models.Cafe
	if err := ctx.ShouldBindJSON(&cafe); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	created, err := c.service.Create(ctx.Request.Context(), cafe)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCafe godoc
// @Summary Update a cafe
// @Description Update the cafe identified by the id in the payload
// @Tags cafes
// @Accept json
// @Produce json
// @Param cafe body models.Cafe true "Cafe object"
// @Success 202 {object} models.Cafe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/update [put]
func (c *cafeController) UpdateCafe(ctx *gin.Context) {
	var cafe models.Cafe
	if err := ctx.ShouldBindJSON(&cafe); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), cafe)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, updated)
}

// DeleteCafeByID godoc
// @Summary Delete cafe by ID
// @Description Delete a cafe and all of its pizzas
// @Tags cafes
// @Produce json
// @Param id path int true "Cafe ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.APIError
// @Security BasicAuth
// @Router /cafe/delete-by-id/{id} [delete]
func (c *cafeController) DeleteCafeByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	respondMessage(ctx, "Cafe deleted successfully")
}

// DeleteCafeChain godoc
// @Summary Delete a cafe chain
// @Description Delete every cafe with the given name together with their pizzas
// @Tags cafes
// @Produce json
// @Param name path string true "Cafe name"
// @Success 200 {object} models.MessageResponse
// @Security BasicAuth
// @Router /cafe/delete-chain/{name} [delete]
func (c *cafeController) DeleteCafeChain(ctx *gin.Context) {
	if err := c.service.DeleteChain(ctx.Request.Context(), ctx.Param("name")); err != nil {
		respondWithError(ctx, err)
		return
	}
	respondMessage(ctx, "Cafe chain deleted successfully")
}

// DeleteCafeByNameAndAddress godoc
// @Summary Delete cafe by name and address
// @Tags cafes
// @Produce json
// @Param name path string true "Cafe name"
// @Param address path string true "Cafe address"
// @Success 200 {object} models.MessageResponse
// @Security BasicAuth
// @Router /cafe/delete-by-name-address/{name}/{address} [delete]
func (c *cafeController) DeleteCafeByNameAndAddress(ctx *gin.Context) {
	if err := c.service.DeleteByNameAndAddress(ctx.Request.Context(), ctx.Param("name"), ctx.Param("address")); err != nil {
		respondWithError(ctx, err)
		return
	}
	respondMessage(ctx, "Cafe deleted successfully")
}
