package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/authgw"
	"github.com/elynrose/gpt-cells-app-sub001/internal/catalog"
	"github.com/elynrose/gpt-cells-app-sub001/internal/config"
	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/generate"
	"github.com/elynrose/gpt-cells-app-sub001/internal/middleware"
)

// Dependencies carries everything SetupRoutes needs to build the handlers.
type Dependencies struct {
	Config          *config.Config
	Logger          *zap.Logger
	Users           core.UserService
	Projects        core.ProjectService
	Models          core.ModelService
	Plans           core.PlanService
	Payments        core.PaymentService
	ProviderConfigs core.ProviderConfigService
	Auditor         core.AuditService
	Gateway         *authgw.Gateway
	Dispatcher      *generate.Dispatcher
	Engine          *catalog.Engine
	Adapters        []catalog.ProviderAdapter
	Loader          *console.Loader
}

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router before this is
// called.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		deps.Logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, deps.Logger)
	adminMW := middleware.NewAdminMiddleware(deps.Users, deps.Logger)

	authHandler := NewAuthHandler(deps.Gateway, deps.Users)
	userHandler := NewUserHandler(deps.Users, deps.Gateway, deps.Auditor)
	projectHandler := NewProjectHandler(deps.Projects, deps.Auditor)
	modelHandler := NewModelHandler(deps.Models, deps.Engine, deps.Adapters, deps.Auditor)
	planHandler := NewPlanHandler(deps.Plans, deps.Auditor)
	paymentHandler := NewPaymentHandler(deps.Payments, deps.Auditor)
	providerConfigHandler := NewProviderConfigHandler(deps.ProviderConfigs, deps.Dispatcher, deps.Auditor)
	generateHandler := NewGenerateHandler(deps.Dispatcher, deps.Users)
	adminHandler := NewAdminHandler(deps.Loader, deps.Auditor)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/signin", authHandler.SignIn)
			// The federated flow: the client signs in with a popup and posts
			// the resulting ID token for verification and profile bootstrap.
			authGroup.POST("/session", authHandler.Session)
			authGroup.POST("/signout", authMW.VerifyToken(), authHandler.SignOut)
			authGroup.GET("/me", authMW.VerifyToken(), authHandler.Me)
		}

		authed := apiV1.Group("", authMW.VerifyToken())
		{
			authed.GET("/users/me", userHandler.GetProfile)
			authed.PATCH("/users/me", userHandler.UpdateProfile)

			projects := authed.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("", projectHandler.ListProjects)
				projects.GET("/:projectId", projectHandler.GetProject)
				projects.PUT("/:projectId", projectHandler.UpdateProject)
				projects.DELETE("/:projectId", projectHandler.DeleteProject)
				projects.POST("/:projectId/sheets", projectHandler.AddSheet)
			}

			// Generation clients: active catalog, provider settings, dispatch.
			authed.GET("/models", modelHandler.ListActiveModels)
			authed.GET("/plans", planHandler.ListActivePlans)
			authed.GET("/generation/config", providerConfigHandler.GenerationConfig)
			authed.POST("/generate", generateHandler.Generate)
		}

		admin := apiV1.Group("/admin", authMW.VerifyToken(), adminMW.RequireAdmin())
		{
			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.CreateUser)
				users.GET("/:userId", userHandler.GetUser)
				users.PUT("/:userId", userHandler.UpdateUser)
				users.DELETE("/:userId", userHandler.DeleteUser)
			}

			admin.GET("/projects", projectHandler.ListAllProjects)

			modelsGroup := admin.Group("/models")
			{
				modelsGroup.GET("", modelHandler.ListModels)
				modelsGroup.POST("", modelHandler.CreateModel)
				modelsGroup.POST("/sync", modelHandler.SyncModels)
				modelsGroup.POST("/migrate-status", modelHandler.MigrateStatus)
				modelsGroup.GET("/:modelId", modelHandler.GetModel)
				modelsGroup.PUT("/:modelId", modelHandler.UpdateModel)
				modelsGroup.DELETE("/:modelId", modelHandler.DeleteModel)
			}

			plans := admin.Group("/plans")
			{
				plans.GET("", planHandler.ListPlans)
				plans.POST("", planHandler.CreatePlan)
				plans.GET("/:planId", planHandler.GetPlan)
				plans.PUT("/:planId", planHandler.UpdatePlan)
				plans.DELETE("/:planId", planHandler.DeletePlan)
			}

			payments := admin.Group("/payments")
			{
				payments.GET("", paymentHandler.ListPayments)
				payments.POST("", paymentHandler.CreatePayment)
				payments.GET("/:paymentId", paymentHandler.GetPayment)
				payments.PUT("/:paymentId", paymentHandler.UpdatePayment)
				payments.DELETE("/:paymentId", paymentHandler.DeletePayment)
			}

			admin.GET("/providers/:provider/config", providerConfigHandler.GetConfig)
			admin.PUT("/providers/:provider/config", providerConfigHandler.UpdateConfig)

			admin.GET("/overview", adminHandler.Overview)
			admin.GET("/audit", adminHandler.AuditLog)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	deps.Logger.Info("API routes configured", zap.String("base", "/api/v1"))
}
