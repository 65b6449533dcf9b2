package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"todoapi/docs"
	"todoapi/internal/auth"
	"todoapi/internal/cache"
	"todoapi/internal/config"
	"todoapi/internal/db"
	"todoapi/internal/handler"
	"todoapi/internal/model"
	"todoapi/internal/repository"
	"todoapi/internal/router"
	"todoapi/internal/service"
)

// @title Todo API
// @version 1.0
// @description Multi-user to-do list API with signup, login, and owner-scoped todos.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description Bearer token issued by POST /login, sent as-is in the "token" header.
func main() {
	// A local .env is honored but optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Todo{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)
	todoService := service.NewTodoService(todoRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)

	router.Register(e, jwtService, authHandler, todoHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
