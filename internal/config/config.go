package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	APIJobs APIJobsConfig
	Search  SearchConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey         string
	Model          string
	InputCharLimit int
	Timeout        time.Duration
}

type APIJobsConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// SearchConfig holds the documented defaults used when neither the
// extracted profile nor the user filters supply a value.
type SearchConfig struct {
	DefaultLocation string
	DefaultPageSize int
	MaxPageSize     int
}

type UploadConfig struct {
	MaxFileSize int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			InputCharLimit: getEnvAsInt("GEMINI_INPUT_CHAR_LIMIT", 30000),
			Timeout:        getEnvAsDuration("REQUEST_TIMEOUT", "30s"),
		},
		APIJobs: APIJobsConfig{
			APIKey:  getEnv("APIJOBS_API_KEY", ""),
			BaseURL: getEnv("APIJOBS_BASE_URL", "https://api.apijobs.dev"),
			Timeout: getEnvAsDuration("REQUEST_TIMEOUT", "30s"),
		},
		Search: SearchConfig{
			DefaultLocation: getEnv("DEFAULT_LOCATION", "remote"),
			DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}

	// Both API keys are required; refusing to start beats failing on the
	// first request.
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.APIJobs.APIKey == "" {
		return nil, fmt.Errorf("APIJOBS_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
