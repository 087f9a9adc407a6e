package main

import (
	"context"
	"fmt"

	_ "github.com/franciscosanchezn/gin-cafe-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-cafe-api/internal/auth"
	"github.com/franciscosanchezn/gin-cafe-api/internal/config"
	"github.com/franciscosanchezn/gin-cafe-api/internal/database"
	"github.com/franciscosanchezn/gin-cafe-api/internal/repository"
	"github.com/franciscosanchezn/gin-cafe-api/internal/server"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Cafe API
// @version 1.0
// @description Cafes, their pizzas and the users allowed to manage them
// @host localhost:8080
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token from /oauth/token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize repositories and services
	cafeRepository := repository.NewCafeRepository(db)
	userService := services.NewUserService(repository.NewUserRepository(db), repository.NewRoleRepository(db))

	oauthService := auth.NewOAuthService(db, configuration.JWTSecret, userService)
	purgeExpiredTokens(oauthService)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := server.NewRouter(server.Dependencies{
		Cafes:          services.NewCafeService(cafeRepository),
		Pizzas:         services.NewPizzaService(cafeRepository, repository.NewPizzaRepository(db)),
		Users:          userService,
		Clients:        services.NewClientService(db),
		OAuth:          oauthService,
		JWTSecret:      configuration.JWTSecret,
		AllowedOrigins: configuration.CORSAllowedOrigins,
		Logger:         log.StandardLogger(),
	})
	checkPanicErr(err)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level.
// LOG_LEVEL wins when set, otherwise the level follows APP_ENV.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(config.GetEnvWithDefault("LOG_LEVEL", "")); err == nil {
		log.SetLevel(level)
		return
	}
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database, migrates the schema and seeds
// the roles and the bootstrap admin
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		URL:      conf.DatabaseURL,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
		LogLevel: conf.DBLogLevel,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.Seed(db, database.SeedOptions{
		AdminUsername: conf.AdminUsername,
		AdminPassword: conf.AdminPassword,
		DemoData:      conf.SeedDemoData,
	}))
	return db
}

// purgeExpiredTokens drops tokens left over from previous runs
func purgeExpiredTokens(oauthService *auth.OAuthService) {
	removed, err := oauthService.TokenStore().DeleteExpired(context.Background())
	if err != nil {
		log.WithError(err).Warn("Failed to purge expired tokens")
		return
	}
	log.WithField("removed", removed).Info("Expired tokens purged")
}
