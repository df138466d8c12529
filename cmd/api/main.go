package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/irakoze/inanga/internal/pkg/config"
	"github.com/irakoze/inanga/internal/pkg/database"
	"github.com/irakoze/inanga/internal/pkg/health"
	"github.com/irakoze/inanga/internal/pkg/logger"
	"github.com/irakoze/inanga/internal/pkg/mail"
	"github.com/irakoze/inanga/internal/pkg/middleware"
	nsqpkg "github.com/irakoze/inanga/internal/pkg/nsq"
	contentHandler "github.com/irakoze/inanga/services/content/handler"
	contentRepo "github.com/irakoze/inanga/services/content/repository"
	contentUsecase "github.com/irakoze/inanga/services/content/usecase"
	donationGateway "github.com/irakoze/inanga/services/donation/gateway"
	donationHandler "github.com/irakoze/inanga/services/donation/handler"
	donationRepo "github.com/irakoze/inanga/services/donation/repository"
	donationUsecase "github.com/irakoze/inanga/services/donation/usecase"
	notificationHandler "github.com/irakoze/inanga/services/notification/handler"
	notificationNSQ "github.com/irakoze/inanga/services/notification/handler/nsq"
	notificationRepo "github.com/irakoze/inanga/services/notification/repository"
	notificationUsecase "github.com/irakoze/inanga/services/notification/usecase"
)

func main() {
	appName := "inanga-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/api.env")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logs := appLogger.Logger

	logs.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logs.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logs.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress, logs)
	if err != nil {
		logs.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Donation service
	donRepo := donationRepo.NewDonationRepo(postgresClient.GetDB())
	momoGW := donationGateway.NewMoMoGateway(configs, logs)
	donUC := donationUsecase.NewDonationUC(configs, donRepo, momoGW, logs)
	donHandler := donationHandler.NewDonationHandler(donUC)

	// Sweeper closes donations orphaned in pending
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := donationUsecase.NewSweeper(configs, donUC, logs)
	sweeper.Start(ctx)

	// Notification service
	mailer := mail.NewSMTPMailer(configs.Mail)
	notifRepo := notificationRepo.NewNotificationRepo(postgresClient.GetDB())
	notifUC := notificationUsecase.NewNotificationUC(notifRepo, redisClient, mailer, logs)
	notifHandler := notificationHandler.NewNotificationHandler(notifUC)

	// Mail fan-out consumer
	consumer, err := nsqpkg.NewConsumer(
		configs.NSQ.EventTopic,
		configs.NSQ.MailerChannel,
		configs.NSQ.NSQDAddress,
		logs,
		notificationNSQ.NewEventConfirmedHandler(notifUC, logs),
	)
	if err != nil {
		logs.WithError(err).Fatal("Failed to start NSQ consumer")
	}
	defer consumer.Stop()

	// Content service
	cmsRepo := contentRepo.NewContentRepo(postgresClient.GetDB())
	cmsUC := contentUsecase.NewContentUC(configs, cmsRepo, producer, logs)
	cmsHandler := contentHandler.NewContentHandler(cmsUC)
	uploadHandler := contentHandler.NewUploadHandler(configs.Upload)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(logs))
	e.Use(middleware.PanicRecoveryMiddleware(logs))

	health.RegisterHealthEndpoints(e, appName)

	donHandler.RegisterRoutes(e, configs.JWT)
	notifHandler.RegisterRoutes(e)
	cmsHandler.RegisterRoutes(e, uploadHandler, configs)

	// Start server
	logs.WithFields(logrus.Fields{
		"app":  appName,
		"port": configs.Server.Port,
	}).Info("Starting server")

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			logs.WithError(err).Info("Server stopped")
		}
	}()

	<-ctx.Done()
	logs.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logs.WithError(err).Error("Forced shutdown")
	}
}
