package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"logistics/cmd"
	_ "logistics/docs"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/eventrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/generated/servers"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDelayedAfter = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDatabase(configs)
	redisClient := mustConnectRedis(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateFlagDelayedParcelsCommandHandler(),
		delayedAfter(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		DelayedAfter:  goDotEnvVariable("DELAYED_AFTER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver errors such as duplicate-key violations
	// onto gorm sentinel errors, which the repositories depend on.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&parcelrepo.ParcelDTO{}, &eventrepo.EventDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustConnectRedis(configs cmd.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	return client
}

func delayedAfter(configs cmd.Config) time.Duration {
	if configs.DelayedAfter == "" {
		return defaultDelayedAfter
	}

	d, err := time.ParseDuration(configs.DelayedAfter)
	if err != nil {
		log.Fatalf("Error parsing DELAYED_AFTER: %v", err)
	}
	return d
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	srv := httpadapter.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelAttributesCommandHandler(),
		app.CreateAddSpecialMarkerCommandHandler(),
		app.CreateChangeParcelStatusCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateGetParcelsQueryHandler(),
		app.CreateGetCurrentStatusQueryHandler(),
		app.CreateGetTrackingHistoryQueryHandler(),
		app.CreateCalculateCostQueryHandler(),
		app.CreateGetMonthlyReportQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, srv, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
