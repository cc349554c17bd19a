// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/peterlaczo/cs50-finance/internal/api"
	"github.com/peterlaczo/cs50-finance/internal/api/handler"
	"github.com/peterlaczo/cs50-finance/internal/config"
	"github.com/peterlaczo/cs50-finance/internal/quote"
	"github.com/peterlaczo/cs50-finance/internal/repository"
	"github.com/peterlaczo/cs50-finance/internal/repository/postgres"
	"github.com/peterlaczo/cs50-finance/internal/service"
	"github.com/peterlaczo/cs50-finance/internal/session"
	"github.com/peterlaczo/cs50-finance/internal/util"
	"github.com/peterlaczo/cs50-finance/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client

	// Repositories
	UserRepository        repository.UserRepository
	TransactionRepository repository.TransactionRepository

	// Collaborators
	Quotes   quote.Provider
	Sessions session.Store

	// Services
	AuthService      service.AuthService
	TradeService     service.TradeService
	PortfolioService service.PortfolioService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.Migrate(app.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.Logger.Info("Database connection established.")

	// 4. Connect to Redis for the session store
	app.Redis = redis.NewClient(&redis.Options{
		Addr:     app.Config.RedisAddr,
		Password: app.Config.RedisPassword,
	})
	if err := app.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.Sessions = session.NewRedisStore(app.Redis)
	app.Logger.Info("Session store initialized.")

	// 5. Initialize Repositories and the quote client
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.Quotes = quote.NewClient(app.Config.QuoteAPIURL, app.Config.QuoteAPIKey)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.Config.StartingCash,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.TradeService = service.NewTradeService(
		app.DB,
		app.UserRepository,
		app.TransactionRepository,
		app.Quotes,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.PortfolioService = service.NewPortfolioService(
		app.DB,
		app.UserRepository,
		app.TransactionRepository,
		app.Quotes,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	handlers := api.Handlers{
		Auth:      handler.NewAuthHandler(app.AuthService, app.Sessions, app.Logger),
		Trade:     handler.NewTradeHandler(app.TradeService, app.PortfolioService, app.Logger),
		Portfolio: handler.NewPortfolioHandler(app.PortfolioService, app.Logger),
		Quote:     handler.NewQuoteHandler(app.Quotes, app.Logger),
	}
	app.HTTPHandler = api.NewRouter(handlers, app.Sessions, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Error("Failed to close Redis connection", "error", err)
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		app.Logger.Info("Redis connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
