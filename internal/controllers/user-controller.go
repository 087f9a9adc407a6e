package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RoleRequest names a role to grant
type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserRequest is the payload of POST /user/create
type UserRequest struct {
	Username string        `json:"username" binding:"required,max=255"`
	Password string        `json:"password" binding:"required"`
	Roles    []RoleRequest `json:"roles" binding:"dive"`
}

// UserResponse is the created user as returned to the caller. The password
// hash is never exposed.
type UserResponse struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser godoc
// @Summary Create a user
// @Description Create a user with the given roles. Every role must already exist.
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} models.APIError "Invalid payload or unknown role"
// @Failure 409 {object} models.APIError "Username already taken"
// @Security BasicAuth
// @Router /user/create [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	roleNames := uniqueRoleNames(req.Roles)

	user, err := uc.userService.CreateUser(c.Request.Context(), req.Username, req.Password, roleNames)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    roleNames,
	})
}

// uniqueRoleNames keeps the first occurrence of every requested role
func uniqueRoleNames(roles []RoleRequest) []string {
	seen := make(map[string]bool, len(roles))
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if seen[role.Name] {
			continue
		}
		seen[role.Name] = true
		names = append(names, role.Name)
	}
	return names
}
