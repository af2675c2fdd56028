package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/palletops/opsdash/internal/config"
	"github.com/palletops/opsdash/internal/database"
	"github.com/palletops/opsdash/internal/handler"
	"github.com/palletops/opsdash/internal/logger"
	"github.com/palletops/opsdash/internal/report"
	"github.com/palletops/opsdash/internal/repository"
	"github.com/palletops/opsdash/internal/service"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	dbConfig := database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	provider := repository.NewReportRepository(db)
	reportSvc := service.NewReportService(provider, report.LogSink{})
	reportHandler := handler.NewReportHandler(reportSvc)

	a.RegisterMiddlewares()
	a.RegisterRoutes(reportHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(reportHandler *handler.ReportHandler) {
	reports := a.Echo.Group("/reports")
	reports.GET("/aco/:orderRef", reportHandler.AcoReportHandler)
	reports.GET("/grn/:grnRef", reportHandler.GrnReportHandler)
	reports.GET("/transactions", reportHandler.TransactionReportHandler)
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
