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

	"availability-service/internal/adapters/csvload"
	logger_adapter "availability-service/internal/adapters/logger"
	"availability-service/internal/adapters/memstore"
	"availability-service/internal/adapters/rest"
	"availability-service/internal/configs"
	"availability-service/internal/core/port"
	"availability-service/internal/core/usecase"
)

// App – структура приложения
type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server
	logger    port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРА ---
	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)

	baseLogger := stdoutLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", nil)

	// --- 2. ЗАГРУЗКА ДАТАСЕТА ---
	// Таблицы читаются один раз при старте и дальше не меняются.
	listingsLoader := csvload.NewListingsLoader(baseLogger)
	listings, err := listingsLoader.Load(appConfig.Dataset.ListingsCSVPath)
	if err != nil {
		appLogger.Error("Failed to load listings dataset", err, nil)
		return nil, fmt.Errorf("failed to load listings dataset: %w", err)
	}

	calendarLoader := csvload.NewCalendarLoader(baseLogger)
	calendar, err := calendarLoader.Load(appConfig.Dataset.CalendarCSVPath)
	if err != nil {
		appLogger.Error("Failed to load calendar dataset", err, nil)
		return nil, fmt.Errorf("failed to load calendar dataset: %w", err)
	}

	datasetStore := memstore.NewDatasetStore(listings, calendar, baseLogger)
	appLogger.Info("Dataset store initialized.", nil)

	// --- 3. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	getAvailabilityUseCase := usecase.NewGetAvailabilityUseCase(datasetStore)
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(datasetStore)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(datasetStore)
	getDatasetStatsUseCase := usecase.NewGetDatasetStatsUseCase(datasetStore)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. REST API Server ---
	availabilityHandlers := rest.NewAvailabilityHandler(getAvailabilityUseCase)
	listingsHandlers := rest.NewListingsHandler(getListingDetailsUseCase)
	filtersHandlers := rest.NewFilterHandler(getFilterOptionsUseCase, getDatasetStatsUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT,
		availabilityHandlers, listingsHandlers, filtersHandlers,
		appConfig.Rest.CorsAllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		apiServer: apiServer,
		logger:    appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

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
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
