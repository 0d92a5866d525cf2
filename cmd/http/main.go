package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simoly-service/internal/app/config"
	"simoly-service/internal/app/delivery/http/middlewares"
	"simoly-service/internal/app/delivery/http/routers"
	"simoly-service/internal/app/drivers/database"
	"simoly-service/internal/app/drivers/logger"
	"simoly-service/internal/app/drivers/messaging"
	"simoly-service/internal/app/drivers/storage"
	"simoly-service/internal/app/services/core/ai_configs"
	questionnaireResponses "simoly-service/internal/app/services/core/questionnaire_responses"
	"simoly-service/internal/app/services/core/questionnaires"
	"simoly-service/internal/app/services/core/reports"
	"simoly-service/internal/app/services/shared/llm"
	"simoly-service/internal/app/services/shared/quota"
	sharedRedis "simoly-service/internal/app/services/shared/redis"
	"simoly-service/internal/app/services/shared/reportqueue"
	sharedStorage "simoly-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(driverConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Shared services
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	chatClient := llm.NewOpenAIChatClient(bootstrap.InternalConfig, bootstrap.Logger)
	generationQuota := quota.NewGenerationQuotaLimiter(redisRepository, bootstrap.Logger, bootstrap.InternalConfig.Report.MonthlyQuota)
	reportQueue, err := reportqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.ReportQueue)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize report queue: " + err.Error())
	}

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, bootstrap.InternalConfig, questionnaireUsecase)

	// Questionnaire response
	questionnaireResponseMongoRepository := questionnaireResponses.NewQuestionnaireResponseMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionnaireResponseUsecase := questionnaireResponses.NewQuestionnaireResponseUsecase(questionnaireMongoRepository, questionnaireResponseMongoRepository)
	questionnaireResponseController := questionnaireResponses.NewQuestionnaireResponseController(bootstrap.Logger, bootstrap.InternalConfig, questionnaireResponseUsecase)

	// AI configuration, cached behind Redis
	aiConfigMongoRepository := ai_configs.NewAIConfigMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	aiConfigCachedRepository := ai_configs.NewAIConfigCachedRepository(aiConfigMongoRepository, redisRepository, bootstrap.Logger)
	aiConfigUsecase := ai_configs.NewAIConfigUsecase(aiConfigCachedRepository)
	aiConfigController := ai_configs.NewAIConfigController(bootstrap.Logger, bootstrap.InternalConfig, aiConfigUsecase)

	// Report
	reportMongoRepository := reports.NewReportMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	reportUsecase := reports.NewReportUsecase(
		questionnaireMongoRepository,
		questionnaireResponseMongoRepository,
		aiConfigCachedRepository,
		reportMongoRepository,
		chatClient,
		generationQuota,
		reportQueue,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(bootstrap.Logger, bootstrap.InternalConfig, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		reportController,
		questionnaireController,
		questionnaireResponseController,
		aiConfigController,
	)
}
