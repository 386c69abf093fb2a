package routes

import (
	authport "github.com/caiofernandes-dev/banco-api/internal/domain/port/auth"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/handler"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	bankHandler *handler.BankHandler,
	queryHandler *handler.QueryHandler,
	tokens authport.TokenIssuer,
	logger coreport.Logger,
) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	bankRoutes := router.Group("/banco")
	{
		bankRoutes.POST("/clientes/", bankHandler.CreateCustomer)
		bankRoutes.POST("/contas/", bankHandler.OpenAccount)
		bankRoutes.GET("/contas/:numero", bankHandler.GetStatement)

		// The only authenticated endpoint
		bankRoutes.POST("/transacoes/",
			middleware.BearerAuth(tokens, logger),
			bankHandler.ApplyTransaction,
		)
	}

	queryRoutes := router.Group("/get")
	{
		queryRoutes.GET("/clientes", queryHandler.ListCustomers)
		queryRoutes.GET("/contas", queryHandler.ListAccounts)
		queryRoutes.GET("/cliente/:id", queryHandler.GetCustomer)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
