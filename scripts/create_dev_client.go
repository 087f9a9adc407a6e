package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-cafe-api/internal/config"
	"github.com/franciscosanchezn/gin-cafe-api/internal/database"
	"github.com/franciscosanchezn/gin-cafe-api/internal/repository"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Registers an OAuth client owned by an existing user and prints its
// credentials. The secret is shown once and cannot be recovered later.
func main() {
	username := flag.String("user", "admin", "Username owning the client")
	name := flag.String("name", "Development Client", "Client name")
	grants := flag.String("grants", "password client_credentials refresh_token", "Allowed grant types")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

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
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	ctx := context.Background()
	users := services.NewUserService(repository.NewUserRepository(db), repository.NewRoleRepository(db))
	owner, err := users.LoadUserByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("Failed to load user %q: %v", *username, err)
	}

	client, secret, err := services.NewClientService(db).CreateClient(ctx, owner.UserID, services.ClientRegistration{
		Name:       *name,
		Domain:     "http://localhost",
		Scopes:     "read write",
		GrantTypes: *grants,
	})
	if err != nil {
		log.Fatal("Failed to create client: ", err)
	}

	fmt.Printf("OAuth client created for user '%s' (roles: %v)\n", owner.Username, owner.Roles)
	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Printf("Grant types: %s\n", client.GrantTypes)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s:%d/oauth/token \\\n", conf.Host, conf.Port)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}
