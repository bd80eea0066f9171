package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"localmarket/internal/adapter/api"
	"localmarket/internal/adapter/api/handler"
	apimiddleware "localmarket/internal/adapter/api/middleware"
	"localmarket/internal/adapter/api/router"
	"localmarket/internal/adapter/repository"
	"localmarket/internal/infrastructure/firebase"
	"localmarket/internal/infrastructure/kafka"
	"localmarket/internal/infrastructure/ratelimit"
	"localmarket/internal/infrastructure/redis"
	"localmarket/internal/infrastructure/websocket"
	"localmarket/internal/usecase"
	"localmarket/pkg/config"
	"localmarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		logger.Info().Msg("using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			logger.Fatal().Str("path", cfg.ServiceAccountPath).Msg("service account file does not exist")
		}
		logger.Info().Str("path", cfg.ServiceAccountPath).Msg("using Firebase service account file")
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Firebase")
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Firebase Auth")
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Firestore client")
	}
	defer firestoreClient.Close()

	rdb := redis.NewClient(cfg.Redis)
	defer rdb.Close()
	notificationStore := redis.NewNotificationStore(rdb)

	publisher := usecase.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		kafkaPublisher := kafka.NewPublisher(cfg.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.RequestTopic).Msg("publishing request events to Kafka")
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	sellerRepo := repository.NewFirestoreSellerRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	feedbackRepo := repository.NewFirestoreFeedbackRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute)
	limiter.StartCleanupRoutine(ctx.Done())

	useCases := handler.UseCases{
		User:         usecase.NewUserUseCase(userRepo),
		Seller:       usecase.NewSellerUseCase(sellerRepo, userRepo, cfg.NearbyDefaultLimit),
		Product:      usecase.NewProductUseCase(productRepo, sellerRepo),
		Request:      usecase.NewRequestUseCase(requestRepo, productRepo, sellerRepo, publisher, wsManager),
		Review:       usecase.NewReviewUseCase(reviewRepo, requestRepo, productRepo),
		Favorite:     usecase.NewFavoriteUseCase(favoriteRepo, productRepo),
		Feedback:     usecase.NewFeedbackUseCase(feedbackRepo),
		Notification: usecase.NewNotificationUseCase(requestRepo, notificationStore),
	}

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	checks := map[string]handler.HealthCheck{
		"firestore": func(ctx context.Context) error { return repository.Ping(ctx, firestoreClient) },
		"redis":     notificationStore.Ping,
	}
	handlers := handler.Setup(useCases, checks, wsManager, authMiddleware)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, handlers, authMiddleware, adminMiddleware, limiter)

	go func() {
		logger.Info().Str("port", cfg.ServerPort).Msg("starting server")
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
