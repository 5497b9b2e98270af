package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"citrustrack/cmd"
	httpadapter "citrustrack/internal/adapters/in/http"
	"citrustrack/internal/adapters/out/postgres/documentrepo"
	"citrustrack/internal/adapters/out/postgres/shipmentrepo"
	"citrustrack/internal/adapters/out/postgres/trackingrepo"
	"citrustrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleShipmentThreshold = 48 * time.Hour

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db, err := gorm.Open(postgresdriver.Open(configs.DBConnectionString()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&trackingrepo.TrackingEventDTO{},
		&documentrepo.DocumentDTO{},
	); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		root.CreateGetStaleShipmentsQueryHandler(),
		configs.StaleShipmentThreshold,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		StaleShipmentThreshold: staleThresholdFromEnv(logger),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func staleThresholdFromEnv(logger *slog.Logger) time.Duration {
	raw := os.Getenv("STALE_SHIPMENT_THRESHOLD")
	if raw == "" {
		return defaultStaleShipmentThreshold
	}

	threshold, err := time.ParseDuration(raw)
	if err != nil || threshold <= 0 {
		logger.Warn("Invalid STALE_SHIPMENT_THRESHOLD, using default",
			"value", raw, "default", defaultStaleShipmentThreshold.String())
		return defaultStaleShipmentThreshold
	}
	return threshold
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	createShipment := root.CreateCreateShipmentCommandHandler()
	appendEvent := root.CreateAppendTrackingEventCommandHandler()
	generateInvoice := root.CreateGenerateInvoiceCommandHandler()

	server := httpadapter.NewServer(
		&createShipment,
		&appendEvent,
		&generateInvoice,
		root.CreateGetShipmentQueryHandler(),
		root.CreateListShipmentsQueryHandler(),
		root.CreateListTrackingEventsQueryHandler(),
		root.CreateGetCurrentStateQueryHandler(),
		root.CreateListDocumentsQueryHandler(),
		root.CreateTrackShipmentQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
