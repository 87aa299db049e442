package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrmetrics/employee_dashboard/internal/config"
	"github.com/hrmetrics/employee_dashboard/internal/database"
	"github.com/hrmetrics/employee_dashboard/internal/handler"
	"github.com/hrmetrics/employee_dashboard/internal/logger"
	"github.com/hrmetrics/employee_dashboard/internal/repository"
	"github.com/hrmetrics/employee_dashboard/internal/service"
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
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize database connection
	db, err := database.NewDB(ctx, DBConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db
	logger.InfoLog(ctx, "Database connection established successfully")

	// Initialize dependencies
	repo := repository.NewDashboardRepository(db)
	svc := service.NewDashboardService(repo)
	dashHandler, err := handler.NewDashboardHandler(svc)
	if err != nil {
		return fmt.Errorf("failed to initialize handler: %w", err)
	}

	a.RegisterMiddlewares()
	a.RegisterRoutes(dashHandler)

	return nil
}

// DBConfig maps the loaded environment onto the database config.
func DBConfig() database.Config {
	return database.Config{
		Driver:          config.DefaultEnvConfig.DB_DRIVER,
		Path:            config.DefaultEnvConfig.DB_PATH,
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
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(h *handler.DashboardHandler) {
	a.Echo.GET("/overview", h.OverviewHandler)
	a.Echo.GET("/employees", h.ListEmployeesHandler)
	a.Echo.GET("/employees/:id", h.GetEmployeeHandler)
	a.Echo.GET("/salaries", h.ListSalariesHandler)
	a.Echo.GET("/departments", h.ListDepartmentsHandler)
	a.Echo.GET("/departments/:id/stats", h.DepartmentStatsHandler)

	analyticsGroup := a.Echo.Group("/analytics")
	analyticsGroup.GET("/departments", h.AllDepartmentStatsHandler)
	analyticsGroup.GET("/top-earners", h.TopEarnersHandler)
	analyticsGroup.GET("/headcount", h.HeadcountHandler)

	a.Echo.GET("/export/report.xlsx", h.ExportReportHandler)
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
