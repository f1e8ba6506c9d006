// File: weatherchat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weatherchat/config"
	"weatherchat/database"
	"weatherchat/database/repository"
	"weatherchat/handlers"
	"weatherchat/middleware"
	"weatherchat/routes"
	"weatherchat/services/nlp"
	"weatherchat/services/session"
	"weatherchat/services/weather"
	"weatherchat/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitRedis()

	cacheTTL := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute

	// Redis when configured, in-memory otherwise.
	var forecastCache weather.Cache
	var sessions session.Store
	if client := utils.GetCacheClient(); client != nil {
		forecastCache = weather.NewRedisCache(client)
		sessions = session.NewRedisStore(client, sessionTTL)
	} else {
		forecastCache = weather.NewMemoryCache(utils.CacheJanitorInterval)
		sessions = session.NewMemoryStore(sessionTTL)
	}

	weatherSvc := weather.NewOpenMeteoService(
		config.AppConfig.GeocodeURL,
		config.AppConfig.ForecastURL,
		forecastCache,
		cacheTTL,
	)

	classifier := &nlp.Classifier{}
	if model, err := nlp.LoadIntentModel(config.AppConfig.ModelPath); err != nil {
		logger.Warn("intent model unavailable, using rule-based classification", zap.Error(err))
	} else {
		classifier.Model = model
		logger.Info("intent model loaded", zap.String("path", config.AppConfig.ModelPath))
	}

	var analyzer *nlp.SentimentAnalyzer
	if config.AppConfig.SentimentEnabled {
		analyzer = nlp.NewSentimentAnalyzer()
	}

	interpreter := &nlp.DefaultInterpreter{
		Classifier: classifier,
		Sentiment:  analyzer,
	}

	var archive repository.ConversationRepository
	if database.MongoClient != nil {
		archive = repository.NewMongoConversationRepo()
	}

	chatHandler := handlers.NewChatHandler(interpreter, weatherSvc, sessions, archive)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.RegisterRoutes(router, chatHandler)

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
