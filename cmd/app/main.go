package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/taskhub/internal/config"
	"github.com/bagdasarian/taskhub/internal/db"
	"github.com/bagdasarian/taskhub/internal/handler"
	"github.com/bagdasarian/taskhub/internal/handler/server"
	"github.com/bagdasarian/taskhub/internal/notify"
	"github.com/bagdasarian/taskhub/internal/repository/postgres"
	"github.com/bagdasarian/taskhub/internal/service"
	"github.com/bagdasarian/taskhub/internal/worker"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	database := db.MustLoad(cfg)
	logger.Info("Successfully connected to database!")
	defer database.Close()

	teamRepo := postgres.NewTeamRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	profileRepo := postgres.NewProfileRepository(database)

	sender := notify.NewSender(cfg.SMTP, logger)
	enricher := service.NewEnricher(profileRepo, logger)

	membershipService := service.NewMembershipService(teamRepo, membershipRepo)
	teamService := service.NewTeamService(teamRepo, membershipRepo, membershipService, enricher)
	taskService := service.NewTaskService(taskRepo, membershipService, enricher)

	dispatcher := worker.NewReminderDispatcher(taskRepo, profileRepo, sender, logger, cfg.Reminder)

	h := handler.NewHandler(teamService, taskService, dispatcher)
	srv := server.NewServer(h, logger, cfg.Server.Addr)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go dispatcher.Start(workerCtx)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
}
