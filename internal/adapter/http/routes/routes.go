package routes

import (
	"context"
	"math/rand"
	"os"
	"time"

	_ "renohub/docs" // swag-generated documentation
	"renohub/internal/adapter/activity"
	"renohub/internal/adapter/http/handlers"
	"renohub/internal/adapter/persistence/repository"
	"renohub/internal/infrastructure/database"
	"renohub/internal/infrastructure/logger"
	"renohub/internal/usecase"
	"renohub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the stores, sinks and use cases from the environment and starts
// the server. It blocks until the listener fails.
func Run() {
	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer log.Sync()

	setMiddlewares(log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(log)

	port := envOr("PORT", "8080")
	log.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) {
	repo := buildProjectRepository(log)
	sink := buildActivitySink(log)

	estimateDelay := durationOr("ESTIMATE_DELAY", 1500*time.Millisecond)
	quoteDelay := durationOr("QUOTE_DELAY", 2*time.Second)

	estimateUseCase := usecase.NewEstimateUseCase(sink, log, estimateDelay)
	projectUseCase := usecase.NewProjectUseCase(repo, sink, log)
	quoteUseCase := usecase.NewQuoteUseCase(repo, sink, log, quoteDelay,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	catalogHandler := handlers.NewCatalogHandler()
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	pricingHandler := handlers.NewPricingHandler()
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, catalogHandler, estimateHandler, pricingHandler, projectHandler, quoteHandler)
}

// buildProjectRepository prefers DynamoDB with a SQLite fallback behind the
// failover wrapper. When DynamoDB cannot be configured at all, SQLite serves
// alone; when even SQLite fails the process cannot do useful work.
func buildProjectRepository(log *zap.Logger) interfaces.IProjectRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := database.OpenSQLite(envOr("SQLITE_PATH", "renohub.db"))
	if err != nil {
		log.Fatal("failed to open local project store", zap.Error(err))
	}
	local, err := repository.NewProjectSQLiteRepository(db)
	if err != nil {
		log.Fatal("failed to prepare local project store", zap.Error(err))
	}

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Warn("dynamodb unavailable, serving from local store only", zap.Error(err))
		return local
	}

	return repository.NewFailoverProjectRepository(repository.NewProjectDynamoRepository(ddb), local, log)
}

// buildActivitySink uses Redis when reachable and an in-memory sink otherwise.
// Activity is best-effort either way.
func buildActivitySink(log *zap.Logger) interfaces.IActivitySink {
	addr := envOr("REDIS_ADDR", "localhost:6379")
	client := database.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := database.PingRedis(ctx, client); err != nil {
		log.Warn("redis unavailable, activity log kept in memory", zap.Error(err))
		return activity.NewMemorySink()
	}

	return activity.NewRedisSink(client, log)
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
