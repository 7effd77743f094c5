package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Port              string
	MongoURI          string
	MongoDBName       string
	JWTSecret         string
	TokenExpiry       time.Duration
	RedisURL          string
	UploadDir         string
	MaxUploadBytes    int64
	MaxUploadFiles    int
	RateLimitPerSec   float64
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGODB_DB_NAME", "mveu"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenExpiry:     time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 24)),
		RedisURL:        getEnv("REDIS_URL", ""),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
		MaxUploadFiles:  getEnvAsInt("MAX_UPLOAD_FILES", 5),
		RateLimitPerSec: float64(getEnvAsInt("RATE_LIMIT_PER_SEC", 10)),
	}
}

// GetMaxUploadFiles returns how many images one create-event call may carry.
func (c *Config) GetMaxUploadFiles() int {
	return c.MaxUploadFiles
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
