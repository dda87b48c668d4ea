package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/api"
	"github.com/elynrose/gpt-cells-app-sub001/internal/authgw"
	"github.com/elynrose/gpt-cells-app-sub001/internal/catalog"
	"github.com/elynrose/gpt-cells-app-sub001/internal/config"
	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/generate"
	"github.com/elynrose/gpt-cells-app-sub001/internal/middleware"
	"github.com/elynrose/gpt-cells-app-sub001/pkg/cache"
	"github.com/elynrose/gpt-cells-app-sub001/pkg/messagequeue"
)

func main() {
	// --- 0. Load .env (development convenience) ---
	// In production the variables are set directly on the process.
	if strings.ToLower(os.Getenv("GIN_MODE")) != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file loaded:", err)
		}
	}

	// --- 1. Initialize Logger (Zap) ---
	var zapLogger *zap.Logger
	var err error
	if strings.ToLower(os.Getenv("GIN_MODE")) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync() // Flushes buffer, if any. IMPORTANT for buffered loggers.
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (includes Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	// --- 4. Retrieve initialized clients ---
	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}

	// --- 5. Initialize Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	projectRepo := db.NewFirestoreProjectRepository(firestoreClient)
	modelRepo := db.NewFirestoreModelRepository(firestoreClient)
	planRepo := db.NewFirestorePlanRepository(firestoreClient)
	paymentRepo := db.NewFirestorePaymentRepository(firestoreClient)
	providerConfigRepo := db.NewFirestoreProviderConfigRepository(firestoreClient)
	auditRepo := db.NewFirestoreAuditRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 6. Initialize Cache (Redis when configured, in-memory otherwise) ---
	var cacheBackend cache.Cache
	var closeCache func()
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cache.NewRedisCacheConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.String("addr", appConfig.RedisAddr), zap.Error(err))
		}
		cacheBackend = redisCache
		closeCache = func() {
			if err := redisCache.Close(); err != nil {
				zapLogger.Warn("Failed to close Redis connection", zap.Error(err))
			}
		}
		zapLogger.Info("Redis cache initialized", zap.String("addr", appConfig.RedisAddr))
	} else {
		memCache := cache.NewMemoryCache()
		cacheBackend = memCache
		closeCache = memCache.Close
		zapLogger.Info("In-memory cache initialized (REDIS_ADDR not set)")
	}

	// --- 7. Initialize Message Queue (RabbitMQ when configured, no-op otherwise) ---
	var queue messagequeue.MessageQueue
	if appConfig.RabbitMQURL != "" {
		rabbit, err := messagequeue.NewRabbitMQService(messagequeue.NewRabbitMQServiceConfig{
			URL: appConfig.RabbitMQURL,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to RabbitMQ", zap.Error(err))
		}
		queue = rabbit
		zapLogger.Info("RabbitMQ message queue initialized", zap.String("queue", appConfig.RabbitMQQueue))
	} else {
		queue = messagequeue.NewNoopQueue()
		zapLogger.Info("No-op message queue initialized (RABBITMQ_URL not set)")
	}

	// --- 8. Initialize Core Services ---
	auditService := core.NewAuditService(auditRepo, queue, appConfig.RabbitMQQueue, zapLogger)
	userService := core.NewUserService(userRepo, planRepo)
	projectService := core.NewProjectService(projectRepo, userRepo)
	modelService := core.NewModelService(modelRepo)
	planService := core.NewPlanService(planRepo)
	paymentService := core.NewPaymentService(paymentRepo)
	providerConfigService := core.NewProviderConfigService(providerConfigRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- 9. Initialize Catalog Sync, Generation Dispatch and Console Loader ---
	catalogEngine := catalog.NewEngine(modelRepo, zapLogger)
	adapters := []catalog.ProviderAdapter{
		catalog.NewOpenRouterAdapter(appConfig.OpenRouterBaseURL, zapLogger),
		catalog.NewFalAdapter(),
	}
	dispatcher := generate.NewDispatcher(generate.DispatcherConfig{
		Models:            modelRepo,
		ProviderConfigs:   providerConfigRepo,
		Cache:             cacheBackend,
		CacheTTL:          appConfig.ProviderCacheTTL(),
		OpenRouterBaseURL: appConfig.OpenRouterBaseURL,
		FalBaseURL:        appConfig.FalBaseURL,
		SiteURL:           appConfig.SiteURL,
		SiteName:          appConfig.SiteName,
		Timeout:           appConfig.GenerationTimeout(),
		Logger:            zapLogger,
	})
	overviewLoader := console.NewLoader(userRepo, projectRepo, modelRepo, planRepo, paymentRepo, zapLogger)

	gateway := authgw.NewGateway(authgw.GatewayConfig{
		AuthClient: firebaseAuthClient,
		Users:      userService,
		WebAPIKey:  appConfig.FirebaseWebAPIKey,
		Logger:     zapLogger,
	})

	// --- 10. Bootstrap Data (idempotent) ---
	bootCtx, cancelBootCtx := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelBootCtx()
	if err := planService.EnsureDefaultPlan(bootCtx); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to ensure default plan", zap.Error(err))
	}
	seeded, err := paymentService.EnsureSeeded(bootCtx)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to seed payment records", zap.Error(err))
	}
	if seeded > 0 {
		zapLogger.Info("Seeded mock payment records", zap.Int("count", seeded))
	}

	// --- 11. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 12. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	zapLogger.Info("Global middleware applied", zap.String("clientURL", appConfig.ClientURL))

	// --- 13. Setup API Routes ---
	api.SetupRoutes(router, api.Dependencies{
		Config:          appConfig,
		Logger:          zapLogger,
		Users:           userService,
		Projects:        projectService,
		Models:          modelService,
		Plans:           planService,
		Payments:        paymentService,
		ProviderConfigs: providerConfigService,
		Auditor:         auditService,
		Gateway:         gateway,
		Dispatcher:      dispatcher,
		Engine:          catalogEngine,
		Adapters:        adapters,
		Loader:          overviewLoader,
	})

	// --- 14. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 15. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := queue.Close(); err != nil {
		zapLogger.Warn("Failed to close message queue", zap.Error(err))
	}
	closeCache()
	db.CloseFirestore()

	zapLogger.Info("Server exiting gracefully.")
}
