package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type RESTconfig struct {
	PORT string
	// Список origins дашборда через запятую
	CorsAllowedOrigins []string
}

type DatasetConfig struct {
	ListingsCSVPath string
	CalendarCSVPath string
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Dataset      DatasetConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Отсутствие .env не фатально - всё может прийти из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "availability-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CorsAllowedOrigins = getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	cfg.Dataset.ListingsCSVPath = getEnvAsString("LISTINGS_CSV_PATH", "data/listings.csv")
	cfg.Dataset.CalendarCSVPath = getEnvAsString("CALENDAR_CSV_PATH", "data/calendar.csv")

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
