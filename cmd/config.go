package cmd

// Config carries the environment configuration of the service, loaded from
// .env by cmd/app.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RabbitURL  string

	// AllowEarlyDriverAssignment opens the driver-assignment window while
	// an order is still PREPARING instead of READY only.
	AllowEarlyDriverAssignment bool

	// OutboxBatchSize caps how many lifecycle events one dispatcher tick
	// publishes.
	OutboxBatchSize int
}
