package main

import (
	"context"
	"time"

	"eventhub/internal/auth"
	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/logger"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

func main() {
	log := logger.Get()
	log.Info().Msg("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Event{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	ctx := context.Background()

	count, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count users")
	}
	if count > 0 {
		log.Info().Int64("users", count).Msg("database already has data, skipping seed")
		return
	}

	admin, err := seedUser(ctx, userRepo, "admin@example.com", "Admin User", "admin123", model.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	normal, err := seedUser(ctx, userRepo, "user@example.com", "Normal User", "user123", model.RoleNormal)
	if err != nil {
		log.Fatal().Err(err).Msg("seed normal user")
	}
	log.Info().Uint("admin_id", admin.ID).Uint("user_id", normal.ID).Msg("users created")

	now := time.Now().UTC()
	events := []model.Event{
		{
			Title:       "Team Building Workshop",
			Description: "A fun team building activity for all employees.",
			Date:        now.AddDate(0, 0, 7),
			Time:        "14:00",
			ImageURL:    "https://example.com/team-building.jpg",
			CreatedByID: admin.ID,
		},
		{
			Title:       "Product Launch",
			Description: "Launch of our new product line.",
			Date:        now.AddDate(0, 0, 14),
			Time:        "10:00",
			ImageURL:    "https://example.com/product-launch.jpg",
			CreatedByID: admin.ID,
		},
		{
			Title:       "Holiday Party",
			Description: "Annual company holiday celebration.",
			Date:        now.AddDate(0, 0, 30),
			Time:        "19:00",
			ImageURL:    "https://example.com/holiday-party.jpg",
			CreatedByID: normal.ID,
		},
	}
	for i := range events {
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			log.Fatal().Err(err).Str("title", events[i].Title).Msg("seed event")
		}
	}

	log.Info().Int("events", len(events)).Msg("seed completed")
}

func seedUser(ctx context.Context, repo repository.UserRepository, email, name, password string, role model.UserRole) (*model.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:          email,
		Name:           name,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
