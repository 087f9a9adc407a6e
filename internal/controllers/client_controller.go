package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ClientRequest is the payload of POST /client/create
type ClientRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Domain     string `json:"domain"`
	Scopes     string `json:"scopes"`
	GrantTypes string `json:"grant_types"`
}

// ClientCreatedResponse carries the plain secret, returned only once
type ClientCreatedResponse struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Name         string `json:"name"`
	Scopes       string `json:"scopes"`
	GrantTypes   string `json:"grant_types"`
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Register a new OAuth2 client owned by the caller. Client credentials tokens act as the owner.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body ClientRequest true "Client details"
// @Success 201 {object} ClientCreatedResponse
// @Failure 400 {object} models.APIError "Invalid request"
// @Security BasicAuth
// @Router /client/create [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), c.GetUint("userID"), services.ClientRegistration{
		Name:       req.Name,
		Domain:     req.Domain,
		Scopes:     req.Scopes,
		GrantTypes: req.GrantTypes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ClientCreatedResponse{
		ClientID:     client.ID,
		ClientSecret: secret,
		Name:         client.Name,
		Scopes:       client.Scopes,
		GrantTypes:   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the caller
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} models.OAuthClient
// @Security BasicAuth
// @Router /client/all [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the caller
// @Tags OAuth2 Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.APIError "Client not found"
// @Security BasicAuth
// @Router /client/delete/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), c.GetUint("userID")); err != nil {
		respondWithError(c, err)
		return
	}

	respondMessage(c, "Client deleted successfully")
}
