package main

import (
	"context"
	"employeedocs/cmd/internal/config"
	"employeedocs/cmd/internal/domain/database"
	"employeedocs/cmd/internal/domain/database/repository"
	"employeedocs/cmd/internal/http/handler"
	appmiddleware "employeedocs/cmd/internal/http/middleware"
	"employeedocs/cmd/internal/service"
	"employeedocs/cmd/internal/utils/validators"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	// Loads env vars depending on environment
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	db, err := database.Init(database.Config{Driver: cfg.DBDriver, DSN: cfg.DBDSN})
	if err != nil {
		log.Fatalf("unable to init database, %v", err)
	}

	e := newServer(cfg, db)
	log.Infof("starting server on :%s (db driver: %s)", cfg.Port, cfg.DBDriver)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func newServer(cfg *config.Config, db *gorm.DB) *echo.Echo {
	validate := validators.New()

	// Gettings repos
	employeeRepo := repository.NewEmployeeRepository(db)
	docTypeRepo := repository.NewDocumentTypeRepository(db)
	linkRepo := repository.NewEmployeeDocumentRepository(db)

	// Getting services
	guard := service.NewGuard(employeeRepo, docTypeRepo, linkRepo)
	employeeService := service.NewEmployeeService(employeeRepo, guard, validate)
	docTypeService := service.NewDocumentTypeService(docTypeRepo, validate)
	docService := service.NewDocumentService(linkRepo, guard, validate)

	// Gettings handler
	employeeRoutes := handler.NewEmployeeDefault(employeeService)
	documentRoutes := handler.NewDocumentDefault(docTypeService, docService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appmiddleware.ErrorHandler

	if !cfg.IsProduction() {
		e.Use(middleware.CORS())
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Listings
	e.GET("/documents-type", documentRoutes.GetDocumentTypes)
	e.GET("/employees", employeeRoutes.GetEmployees)
	e.GET("/employees-documents", documentRoutes.GetEmployeeDocuments)

	// Employees
	e.POST("/employee", employeeRoutes.CreateEmployee)
	e.PUT("/employee/:id", employeeRoutes.UpdateEmployee)

	// Document types
	e.POST("/document-type", documentRoutes.CreateDocumentType)
	e.DELETE("/document-type/:id", documentRoutes.DeleteDocumentType)

	// Employee documents
	e.POST("/attach-document", documentRoutes.AttachDocuments)
	e.POST("/send-document", documentRoutes.SendDocument)
	e.DELETE("/detach-document/:id", documentRoutes.DetachDocuments)

	// Docker Compose healthcheck
	e.GET("/health", handler.HealthCheck)
	return e
}
