package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dayboard/internal/auth"
	"dayboard/internal/config"
	"dayboard/internal/db"
	apperrors "dayboard/internal/errors"
	"dayboard/internal/logger"
	"dayboard/internal/repository"
	"dayboard/internal/service"
)

var (
	sampleTodos = []service.NewTodo{
		{Text: "Finish quarterly report", DueDate: "2025-01-10", Category: "Work", Priority: "High", Tags: []string{"report"}},
		{Text: "Book dentist appointment", Category: "Personal", Priority: "Low"},
		{Text: "Revise chapter 4", DueDate: "2025-01-05", Category: "Study", Priority: "Medium", Tags: []string{"exam", "reading"}},
		{Text: "Clean up the garage", Category: "Other", Priority: "Low"},
	}
	sampleGoals  = []string{"Drink 2L of water", "Walk 8000 steps", "Read 20 pages"}
	sampleNotes  = []string{"Ideas for the team offsite", "Gift list: headphones, a plant"}
	sampleHabits = []string{"Meditate", "Stretch", "Journal"}
)

func main() {
	cfg := config.Load()
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("starting seed", slog.String("email", cfg.SeedEmail))

	if err := db.RunMigrations(cfg.MySQLDSN, false); err != nil {
		return err
	}
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return err
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(repository.NewUserRepository(gormDB), jwtService, nil)

	session, err := authService.Register(ctx, "Demo User", cfg.SeedEmail, cfg.SeedPassword)
	if apperrors.Is(err, apperrors.KindConflict) {
		log.Info("demo account exists, nothing to seed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("register demo account: %w", err)
	}
	userID := session.User.ID

	todos := service.NewTodoService(repository.NewTodoRepository(gormDB))
	for _, in := range sampleTodos {
		if _, err := todos.Create(ctx, userID, in); err != nil {
			return fmt.Errorf("seed todo %q: %w", in.Text, err)
		}
	}

	goals := service.NewGoalService(repository.NewGoalRepository(gormDB))
	for _, text := range sampleGoals {
		if _, err := goals.Create(ctx, userID, text); err != nil {
			return fmt.Errorf("seed goal %q: %w", text, err)
		}
	}

	notes := service.NewNoteService(repository.NewNoteRepository(gormDB))
	for _, text := range sampleNotes {
		if _, err := notes.Create(ctx, userID, text); err != nil {
			return fmt.Errorf("seed note %q: %w", text, err)
		}
	}

	habits := service.NewHabitService(repository.NewHabitRepository(gormDB))
	for _, name := range sampleHabits {
		if _, err := habits.Create(ctx, userID, name); err != nil {
			return fmt.Errorf("seed habit %q: %w", name, err)
		}
	}

	log.Info("seed completed",
		slog.String("user_id", userID.String()),
		slog.Int("todos", len(sampleTodos)),
		slog.Int("goals", len(sampleGoals)),
		slog.Int("notes", len(sampleNotes)),
		slog.Int("habits", len(sampleHabits)),
	)
	return nil
}
