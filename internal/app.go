package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	token_adapter "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/adapters/jwt"
	logger_adapter "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/adapters/logger"
	postgres_adapter "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/adapters/postgres"
	rabbitmq_adapter "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/adapters/rabbitmq"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/adapters/rest"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/configs"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/usecase"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/pkg/fluentlogger"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/pkg/postgres"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient   *fluent.Fluent
	eventPublisher eventPublisherCloser
	logger         port.LoggerPort
}

type eventPublisherCloser interface {
	port.EventPublisherPort
	Close() error
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first, everything else logs through them.
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Persistence.
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.RunMigrations(context.Background(), dbPool); err != nil {
		appLogger.Error("Failed to run database migrations", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	appLogger.Info("Database migrations applied.", nil)

	propertyStorage, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
	}
	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	inquiryRepo, err := postgres_adapter.NewInquiryRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create inquiry repository: %w", err)
	}
	favoriteRepo, err := postgres_adapter.NewFavoriteRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorite repository: %w", err)
	}
	notificationRepo, err := postgres_adapter.NewNotificationRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	dashboardRepo, err := postgres_adapter.NewDashboardRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create dashboard repository: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	var eventPublisher eventPublisherCloser
	if appConfig.RabbitMQ.Enabled {
		eventPublisher, err = rabbitmq_adapter.NewEventPublisherAdapter(appConfig.RabbitMQ.URL)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		appLogger.Info("Connected to RabbitMQ.", nil)
	} else {
		eventPublisher = rabbitmq_adapter.NewNoopEventPublisher()
		appLogger.Info("RabbitMQ disabled, events will be dropped.", nil)
	}

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// Use cases.
	searchUC := usecase.NewSearchPropertiesUseCase(propertyStorage)
	getDetailsUC := usecase.NewGetPropertyDetailsUseCase(propertyStorage)
	createPropertyUC := usecase.NewCreatePropertyUseCase(propertyStorage)
	updatePropertyUC := usecase.NewUpdatePropertyUseCase(propertyStorage, eventPublisher)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyStorage)

	registerUC := usecase.NewRegisterUserUseCase(userRepo, tokenService, appConfig.JWT.TokenTTL)
	loginUC := usecase.NewLoginUserUseCase(userRepo, tokenService, appConfig.JWT.TokenTTL)
	getCurrentUserUC := usecase.NewGetCurrentUserUseCase(userRepo)

	createInquiryUC := usecase.NewCreateInquiryUseCase(inquiryRepo, propertyStorage, notificationRepo, eventPublisher)
	getSentInquiriesUC := usecase.NewGetSentInquiriesUseCase(inquiryRepo)
	getReceivedInquiriesUC := usecase.NewGetReceivedInquiriesUseCase(inquiryRepo)
	updateInquiryStatusUC := usecase.NewUpdateInquiryStatusUseCase(inquiryRepo, notificationRepo)

	addFavoriteUC := usecase.NewAddFavoriteUseCase(favoriteRepo, propertyStorage)
	removeFavoriteUC := usecase.NewRemoveFavoriteUseCase(favoriteRepo)
	getFavoritesUC := usecase.NewGetFavoritesUseCase(favoriteRepo)
	getFavoriteIDsUC := usecase.NewGetFavoriteIDsUseCase(favoriteRepo)

	getNotificationsUC := usecase.NewGetNotificationsUseCase(notificationRepo)
	markNotificationReadUC := usecase.NewMarkNotificationReadUseCase(notificationRepo)
	markAllNotificationsReadUC := usecase.NewMarkAllNotificationsReadUseCase(notificationRepo)

	getDashboardStatsUC := usecase.NewGetDashboardStatsUseCase(dashboardRepo)

	// REST API server.
	handlers := rest.Handlers{
		Auth: rest.NewAuthHandler(registerUC, loginUC, getCurrentUserUC),
		Property: rest.NewPropertyHandler(
			searchUC, getDetailsUC, createPropertyUC, updatePropertyUC, deletePropertyUC,
			appConfig.Search.RejectInvertedRanges,
		),
		Inquiry:       rest.NewInquiryHandler(createInquiryUC, getSentInquiriesUC, getReceivedInquiriesUC, updateInquiryStatusUC),
		Favorite:      rest.NewFavoriteHandler(addFavoriteUC, removeFavoriteUC, getFavoritesUC, getFavoriteIDsUC),
		Notification:  rest.NewNotificationHandler(getNotificationsUC, markNotificationReadUC, markAllNotificationsReadUC),
		Dashboard:     rest.NewDashboardHandler(getDashboardStatsUC),
		TokenService:  tokenService,
		AllowedOrigin: appConfig.Rest.AllowedOrigin,
	}
	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient:   fluentClient,
		eventPublisher: eventPublisher,
		logger:         appLogger,
	}, nil
}

// Run starts all components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventPublisher != nil {
			if err := a.eventPublisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout, fluent itself may already be gone.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
