// Package server assembles the HTTP router: middleware chain, route
// policy and handlers.
package server

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/franciscosanchezn/gin-cafe-api/internal/auth"
	"github.com/franciscosanchezn/gin-cafe-api/internal/controllers"
	"github.com/franciscosanchezn/gin-cafe-api/internal/metrics"
	"github.com/franciscosanchezn/gin-cafe-api/internal/middleware"
	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/franciscosanchezn/gin-cafe-api/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router dispatches to
type Dependencies struct {
	Cafes     services.CafeService
	Pizzas    services.PizzaService
	Users     services.UserService
	Clients   services.ClientService
	OAuth     *auth.OAuthService
	JWTSecret string

	// AllowedOrigins configures CORS; "*" allows every origin
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// DefaultRoutePolicy lists the access rule of every route. Listings are
// public, cafe details need ADMIN or USER and every write needs ADMIN.
func DefaultRoutePolicy() middleware.RoutePolicy {
	return middleware.RoutePolicy{
		middleware.PermitAll(http.MethodGet, "/cafe/all"),
		middleware.HasAnyRole(http.MethodGet, "/cafe/chain/:name", models.RoleAdmin, models.RoleUser),
		middleware.HasAnyRole(http.MethodGet, "/cafe/id/:id", models.RoleAdmin, models.RoleUser),
		middleware.HasAnyRole(http.MethodGet, "/cafe/name-address/:name/:address", models.RoleAdmin, models.RoleUser),
		middleware.HasAnyRole(http.MethodPost, "/cafe/create", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodPut, "/cafe/update", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodDelete, "/cafe/delete-by-id/:id", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodDelete, "/cafe/delete-chain/:name", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodDelete, "/cafe/delete-by-name-address/:name/:address", models.RoleAdmin),

		middleware.PermitAll(http.MethodGet, "/pizza/all/:cafeName/:cafeAddress"),
		middleware.PermitAll(http.MethodGet, "/pizza/:cafeName/:cafeAddress/name/:name"),
		middleware.PermitAll(http.MethodGet, "/pizza/:cafeName/:cafeAddress/id/:id"),
		middleware.HasAnyRole(http.MethodPost, "/pizza/create/:cafeName/:cafeAddress", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodPut, "/pizza/update/:cafeName/:cafeAddress", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodDelete, "/pizza/delete-pizza-by-name/:cafeName/:cafeAddress/:name", models.RoleAdmin),

		middleware.HasAnyRole(http.MethodPost, "/user/create", models.RoleAdmin),

		middleware.PermitAll(http.MethodPost, "/oauth/token"),
		middleware.HasAnyRole(http.MethodPost, "/client/create", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodGet, "/client/all", models.RoleAdmin),
		middleware.HasAnyRole(http.MethodDelete, "/client/delete/:id", models.RoleAdmin),

		middleware.PermitAll(http.MethodGet, "/health"),
		middleware.PermitAll(http.MethodGet, "/metrics"),
		middleware.PermitAll(http.MethodGet, "/swagger/*any"),
	}
}

// NewRouter builds the gin engine with the full middleware chain and every
// route registered
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		corsMiddleware(deps.AllowedOrigins),
		metrics.Middleware(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.Authenticate(deps.Users, []byte(deps.JWTSecret)),
		middleware.Authorize(DefaultRoutePolicy()),
	)

	setupRoutes(router, deps)
	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{controllers.MessageHeader, "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	cafeController := controllers.NewCafeController(deps.Cafes)
	cafe := router.Group("/cafe")
	{
		cafe.GET("/all", cafeController.GetAllCafes)
		cafe.GET("/chain/:name", cafeController.GetCafeChain)
		cafe.GET("/id/:id", cafeController.GetCafeByID)
		cafe.GET("/name-address/:name/:address", cafeController.GetCafeByNameAndAddress)
		cafe.POST("/create", cafeController.CreateCafe)
		cafe.PUT("/update", cafeController.UpdateCafe)
		cafe.DELETE("/delete-by-id/:id", cafeController.DeleteCafeByID)
		cafe.DELETE("/delete-chain/:name", cafeController.DeleteCafeChain)
		cafe.DELETE("/delete-by-name-address/:name/:address", cafeController.DeleteCafeByNameAndAddress)
	}

	pizzaController := controllers.NewPizzaController(deps.Pizzas)
	pizza := router.Group("/pizza")
	{
		pizza.GET("/all/:cafeName/:cafeAddress", pizzaController.GetAllPizzas)
		pizza.GET("/:cafeName/:cafeAddress/name/:name", pizzaController.GetPizzaByName)
		pizza.GET("/:cafeName/:cafeAddress/id/:id", pizzaController.GetPizzaByID)
		pizza.POST("/create/:cafeName/:cafeAddress", pizzaController.CreatePizza)
		pizza.PUT("/update/:cafeName/:cafeAddress", pizzaController.UpdatePizza)
		pizza.DELETE("/delete-pizza-by-name/:cafeName/:cafeAddress/:name", pizzaController.DeletePizzaByName)
	}

	userController := controllers.NewUserController(deps.Users)
	router.POST("/user/create", userController.CreateUser)

	if deps.OAuth != nil {
		router.POST("/oauth/token", deps.OAuth.HandleToken)
	}

	clientController := controllers.NewClientController(deps.Clients)
	client := router.Group("/client")
	{
		client.POST("/create", clientController.CreateClient)
		client.GET("/all", clientController.ListClients)
		client.DELETE("/delete/:id", clientController.DeleteClient)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-cafe-api",
	})
}
