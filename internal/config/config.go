// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/peterlaczo/cs50-finance/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort    string
	DB            db.Config
	RedisAddr     string
	RedisPassword string
	QuoteAPIURL   string
	QuoteAPIKey   string
	StartingCash  decimal.Decimal
}

// LoadConfig loads configuration from a .env file (if present) and
// environment variables. It returns an AppConfig instance or an error if any
// variable is invalid.
func LoadConfig() (*AppConfig, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "financedb"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	quoteAPIURL := os.Getenv("QUOTE_API_URL")
	if quoteAPIURL == "" {
		quoteAPIURL = "https://cloud.iexapis.com/stable"
	}

	startingCashStr := os.Getenv("STARTING_CASH")
	if startingCashStr == "" {
		startingCashStr = "10000"
	}
	startingCash, err := decimal.NewFromString(startingCashStr)
	if err != nil || !startingCash.IsPositive() {
		return nil, fmt.Errorf("invalid STARTING_CASH %q", startingCashStr)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		QuoteAPIURL:   quoteAPIURL,
		QuoteAPIKey:   os.Getenv("QUOTE_API_KEY"),
		StartingCash:  startingCash,
	}, nil
}
