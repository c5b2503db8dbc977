// Command seed loads demo data for local development: a few accounts with
// printed API tokens, the faculty mentor catalog, and a starter mess
// balance for the student account.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/app"
	"github.com/campusdesk/campus-portal/internal/config"
	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	mentorRepo := repository.NewPgMentorRepository(pool)

	users := []*model.User{
		{Username: "admin", Email: "admin@university.ac.in", FullName: "Portal Admin", Role: model.RoleAdmin, Accommodation: "dayscholar"},
		{Username: "priya", Email: "priya@university.ac.in", FullName: "Priya Sharma", Role: model.RoleStudent, Accommodation: "hosteller"},
		{Username: "rkumar", Email: "r.kumar@university.ac.in", FullName: "Dr. Rajesh Kumar", Role: model.RoleFaculty, Accommodation: "dayscholar"},
	}

	for _, u := range users {
		u.APIToken = uuid.NewString()
		if err := userRepo.Create(ctx, u); err != nil {
			if err == repository.ErrDuplicate {
				logger.Info("User already exists, skipping", zap.String("username", u.Username))
				continue
			}
			logger.Fatal("Failed to create user", zap.String("username", u.Username), zap.Error(err))
		}
		logger.Info("Created user",
			zap.String("username", u.Username),
			zap.String("role", string(u.Role)),
			zap.String("api_token", u.APIToken),
		)
	}

	availability, _ := json.Marshal([]map[string]any{
		{"day": "Monday", "slots": []string{"09:00-10:00", "14:00-15:00"}},
		{"day": "Wednesday", "slots": []string{"11:00-12:00", "16:00-17:00"}},
		{"day": "Friday", "slots": []string{"10:00-11:00", "15:00-16:00"}},
	})

	mentors := []*model.FacultyMentor{
		{
			Name:           "Dr. Rajesh Kumar",
			Department:     "Computer Science",
			Email:          "r.kumar@university.ac.in",
			Office:         "CS Block, Room 204",
			Specialization: "Distributed Systems",
			Availability:   availability,
		},
		{
			Name:           "Dr. Meena Iyer",
			Department:     "Electronics",
			Email:          "m.iyer@university.ac.in",
			Office:         "EC Block, Room 110",
			Specialization: "Signal Processing",
			Availability:   availability,
		},
	}

	for _, m := range mentors {
		existing, err := mentorRepo.GetByEmail(ctx, m.Email)
		if err != nil {
			logger.Fatal("Failed to look up mentor", zap.Error(err))
		}
		if existing != nil {
			logger.Info("Mentor already exists, skipping", zap.String("email", m.Email))
			continue
		}
		if err := mentorRepo.Create(ctx, m); err != nil {
			logger.Fatal("Failed to create mentor", zap.String("email", m.Email), zap.Error(err))
		}
		logger.Info("Created mentor", zap.String("name", m.Name))
	}

	// Starter wallet for the demo student.
	_, err = pool.Exec(ctx, `
		INSERT INTO mess_balances (user_id, balance, meal_swipes, total_meal_swipes, dining_points, meal_plan)
		SELECT id, 2500.00, 14, 19, 450, 'Standard Meal Plan'
		FROM users WHERE username = 'priya'
		ON CONFLICT (user_id) DO NOTHING
	`)
	if err != nil {
		logger.Fatal("Failed to seed mess balance", zap.Error(err))
	}

	logger.Info("Seed complete")
}
