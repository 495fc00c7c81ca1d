package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	HTTPAddr        string
	MaxMonths       int
	CurrencySymbol  string
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
	GinMode         string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:        getEnvString("HTTP_ADDR", ":8000"),
		MaxMonths:       getEnvInt("MAX_MONTHS", 1200),
		CurrencySymbol:  getEnvString("CURRENCY_SYMBOL", "R$"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "scenario-irr"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "text"),
		GinMode:         getEnvString("GIN_MODE", "release"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// HorizonCap возвращает максимальную длину денежного потока в месяцах
func (c *Config) HorizonCap() int {
	return c.MaxMonths
}
