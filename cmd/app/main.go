package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"vendororders/cmd"
	httpin "vendororders/internal/adapters/in/http"
	"vendororders/internal/adapters/out/postgres/orderrepo"
	"vendororders/internal/adapters/out/postgres/outboxrepo"
	"vendororders/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	publisher := openPublisher(configs)

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		RabbitURL:                  goDotEnvVariable("RABBIT_URL"),
		AllowEarlyDriverAssignment: goDotEnvBool("ALLOW_EARLY_DRIVER_ASSIGNMENT"),
		OutboxBatchSize:            goDotEnvInt("OUTBOX_BATCH_SIZE", 100),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func goDotEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return fallback
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns the postgres unique-violation into
	// gorm.ErrDuplicatedKey, which the order repository maps to
	// DuplicateOrder.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &outboxrepo.EventDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func openPublisher(configs cmd.Config) *rabbitmq.Publisher {
	conn, err := amqp.Dial(configs.RabbitURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(conn)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}

	return publisher
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
