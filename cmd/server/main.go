package main

import (
	"net"
	"net/http"
	"time"

	_ "eventhub/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"eventhub/internal/auth"
	"eventhub/internal/cache"
	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/handler"
	"eventhub/internal/logger"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/router"
	"eventhub/internal/service"
)

// @title Event Management System API
// @version 1.0
// @description Event management API with user signup/login and admin-gated event CRUD.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.Get()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB is set
	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Event{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Event{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// Initialize auth components
	tokenTTL := time.Duration(cfg.TokenExpireMinutes) * time.Minute
	jwtService := auth.NewJWTService(cfg.SecretKey, cfg.JWTAlgorithm, tokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	eventService := service.NewEventService(eventRepo, service.NewEventValidator())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, log, userService, authHandler, eventHandler)

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	log.Info().Str("addr", addr).Str("project", cfg.ProjectName).Msg("starting server")
	log.Info().Msgf("Swagger documentation available at: http://%s/swagger/index.html", addr)

	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
