package main

import (
	"fmt"
	"log"
	"os"

	"github.com/skystack/console/pkg/auth"
	"github.com/skystack/console/pkg/config"
	"github.com/skystack/console/pkg/database"
	"github.com/skystack/console/pkg/database/repositories"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: user-admin <command> [args...]")
		fmt.Println("Commands:")
		fmt.Println("  create-user <username> <email> <password> [full_name]")
		fmt.Println("  list-users")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	authSvc := auth.NewService(userRepo, auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry))

	command := os.Args[1]
	switch command {
	case "create-user":
		if len(os.Args) < 5 {
			fmt.Println("Usage: user-admin create-user <username> <email> <password> [full_name]")
			os.Exit(1)
		}

		req := &auth.CreateUserRequest{
			Username: os.Args[2],
			Email:    os.Args[3],
			Password: os.Args[4],
		}
		if len(os.Args) > 5 {
			req.FullName = os.Args[5]
		}

		user, err := authSvc.CreateUser(req)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		fmt.Printf("User created successfully!\n")
		fmt.Printf("ID: %s\n", user.ID)
		fmt.Printf("Username: %s\n", user.Username)
		fmt.Printf("Email: %s\n", user.Email)

	case "list-users":
		users, err := userRepo.List(100, 0)
		if err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}

		fmt.Printf("Found %d users:\n", len(users))
		for _, user := range users {
			fmt.Printf("- %s (%s) - %s\n", user.Username, user.Email, user.FullName)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
