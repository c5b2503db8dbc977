package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/app"
	"github.com/campusdesk/campus-portal/internal/config"
	"github.com/campusdesk/campus-portal/internal/controller/http"
	"github.com/campusdesk/campus-portal/internal/repository"
	"github.com/campusdesk/campus-portal/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	userRepo := repository.NewPgUserRepository(pool)
	mentorRepo := repository.NewPgMentorRepository(pool)
	mentorBookingRepo := repository.NewPgMentorBookingRepository(pool)
	classroomBookingRepo := repository.NewPgClassroomBookingRepository(pool)
	lostFoundRepo := repository.NewPgLostFoundRepository(pool)
	messRepo := repository.NewPgMessRepository(pool)
	courseRepo := repository.NewPgCourseRepository(pool)

	api := http.NewAPI(
		service.NewUserService(userRepo),
		service.NewMentorService(mentorRepo),
		service.NewBookingService(mentorRepo, mentorBookingRepo, logger),
		service.NewClassroomService(classroomBookingRepo, logger),
		service.NewLostFoundService(lostFoundRepo, logger),
		service.NewMessService(messRepo, logger),
		service.NewCourseService(courseRepo, logger),
		logger,
	)

	server := &nethttp.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		logger.Info("Starting campus portal",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
