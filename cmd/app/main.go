package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"opsboard/cmd"
	inhttp "opsboard/internal/adapters/in/http"
	"opsboard/internal/adapters/out/identity"
	"opsboard/internal/adapters/out/postgres/activityrepo"
	"opsboard/internal/adapters/out/postgres/changefeed"
	"opsboard/internal/adapters/out/postgres/eventrepo"
	"opsboard/internal/adapters/out/postgres/inventoryrepo"
	"opsboard/internal/adapters/out/postgres/notificationrepo"
	"opsboard/internal/adapters/out/postgres/shipmentrepo"
	"opsboard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultRetentionDays = 30

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := postgresDSN(configs)
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher := changefeed.NewPublisher(gormDB, logger)
	feed := changefeed.NewListener(dsn, logger)
	defer func() {
		_ = feed.Close()
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeNotificationsCommandHandler(),
		notificationRetention(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, feed, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		IdentityVerifyURL:         goDotEnvVariable("IDENTITY_VERIFY_URL"),
		NotificationRetentionDays: goDotEnvVariable("NOTIFICATION_RETENTION_DAYS"),
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

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.EventDTO{},
		&inventoryrepo.ItemDTO{},
		&notificationrepo.NotificationDTO{},
		&activityrepo.ActivityDTO{},
	)
}

func notificationRetention(configs cmd.Config) time.Duration {
	days := defaultRetentionDays
	if configs.NotificationRetentionDays != "" {
		parsed, err := strconv.Atoi(configs.NotificationRetentionDays)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid NOTIFICATION_RETENTION_DAYS: %s", configs.NotificationRetentionDays)
		}
		days = parsed
	}
	return time.Duration(days) * 24 * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, feed *changefeed.Listener, logger *slog.Logger) {
	server := inhttp.NewServer(inhttp.Handlers{
		CreateShipment:           app.CreateCreateShipmentCommandHandler(),
		UpdateShipment:           app.CreateUpdateShipmentCommandHandler(),
		UpdateShipmentStatus:     app.CreateUpdateShipmentStatusCommandHandler(),
		CreateEvent:              app.CreateCreateEventCommandHandler(),
		UpdateEvent:              app.CreateUpdateEventCommandHandler(),
		CreateInventoryItem:      app.CreateCreateInventoryItemCommandHandler(),
		UpdateInventoryItem:      app.CreateUpdateInventoryItemCommandHandler(),
		MarkNotificationRead:     app.CreateMarkNotificationReadCommandHandler(),
		MarkAllNotificationsRead: app.CreateMarkAllNotificationsReadCommandHandler(),
		DeleteNotification:       app.CreateDeleteNotificationCommandHandler(),

		GetShipments:          app.CreateGetShipmentsQueryHandler(),
		GetShipmentByTracking: app.CreateGetShipmentByTrackingQueryHandler(),
		GetEvents:             app.CreateGetEventsQueryHandler(),
		GetInventoryItems:     app.CreateGetInventoryItemsQueryHandler(),
		GetNotifications:      app.CreateGetNotificationsQueryHandler(),
		GetActivities:         app.CreateGetActivitiesQueryHandler(),
	}, feed, logger)

	var auth echo.MiddlewareFunc
	if configs.IdentityVerifyURL != "" {
		auth = inhttp.BearerAuth(identity.NewHTTPVerifier(configs.IdentityVerifyURL), logger)
	} else {
		logger.Warn("IDENTITY_VERIFY_URL is empty, API runs without authentication")
	}

	e := echo.New()
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
