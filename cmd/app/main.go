package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/postgres/sessionrepo"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/metrics"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	app, err := cmd.NewCompositionRoot(configs, gormDB, slogger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	seedSessionFromEnv(&app, configs)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:      goDotEnvVariable("BACKEND_BASE_URL"),
		BackendBearerToken:  goDotEnvVariable("BACKEND_BEARER_TOKEN"),
		BackendGatewayToken: goDotEnvVariable("BACKEND_GATEWAY_TOKEN"),
		StoreKey:            goDotEnvVariable("STORE_KEY"),
		SyncSchedule:        goDotEnvVariable("SYNC_SCHEDULE"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&sessionrepo.SessionDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// seedSessionFromEnv stores backend credentials provided via environment as
// the active session, so the dashboard works without a separate sign-in
// step. With no credentials in the environment the previous session stays.
func seedSessionFromEnv(app *cmd.CompositionRoot, configs cmd.Config) {
	if configs.BackendBearerToken == "" {
		return
	}

	session := ports.Session{
		Credentials: ports.Credentials{
			BearerToken:  configs.BackendBearerToken,
			GatewayToken: configs.BackendGatewayToken,
		},
		StoreKey: configs.StoreKey,
	}
	if err := app.SessionStore().Save(context.Background(), session); err != nil {
		log.Fatalf("Failed to seed session: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
