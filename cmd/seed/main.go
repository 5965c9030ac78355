package main

import (
	"context"
	"flag"
	"log"

	"notes-be/internal/config"
	"notes-be/internal/entity"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local-identity user so the login form works without GoTrue.
func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "user password (required)")
	name := flag.String("name", "Demo User", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: seed -email <email> -password <password> [-name <name>]")
	}

	cfg := config.Load()
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: *email})
	if err != nil {
		log.Fatalf("Failed to check for existing user: %v", err)
	}
	if existing != nil {
		log.Fatalf("User %s already exists", *email)
	}

	passwordHash := string(hash)
	if err := uow.UserRepository().Create(ctx, &entity.User{
		Email:        *email,
		FullName:     *name,
		PasswordHash: &passwordHash,
	}); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created user %s", *email)
}
