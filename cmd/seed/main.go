package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todoapi/internal/config"
	"todoapi/internal/db"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "Demo1!pass"
	demoName     = "Demo User"
)

var demoTodos = []struct {
	title string
	done  bool
}{
	{"buy milk", false},
	{"write report", false},
	{"call the plumber", true},
}

// Seeds a demo user with a few todos for local development. Safe to re-run:
// if the demo email already exists nothing is written.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Todo{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)

	if existing, err := userRepo.FindByEmail(ctx, demoEmail); err == nil && existing != nil {
		log.Printf("Demo user %s already exists, nothing to do", demoEmail)
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        demoEmail,
		PasswordHash: string(hash),
		Name:         demoName,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (password %q)", demoEmail, demoPassword)

	for _, t := range demoTodos {
		todo := &model.Todo{
			ID:     uuid.NewString(),
			Title:  t.title,
			Done:   t.done,
			UserID: user.ID,
		}
		if err := todoRepo.Create(ctx, todo); err != nil {
			log.Fatalf("Failed to create todo %q: %v", t.title, err)
		}
	}
	log.Printf("Created %d demo todos", len(demoTodos))
}
