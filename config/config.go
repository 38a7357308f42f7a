package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultEnv              = "development"
	DefaultPort             = "3001"
	DefaultJWTExpiryMin     = 1440
	DefaultCookieExpiryDays = 1
	DefaultCORSOrigins      = "http://localhost:3000"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	JWTExpiryMin     int
	CookieExpiryDays int
	CORSOrigins      string
}

// Load reads config/.env.dev or config/.env.prod depending on ENV and
// resolves each key. Precedence: real environment variable, then env
// file, then default. Missing required keys are fatal.
func Load() *Config {
	env := getEnv(nil, "ENV", DefaultEnv)

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}

	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		log.Printf("No %s file found, relying on environment variables", envFile)
	}

	return &Config{
		Env:              env,
		Port:             getEnv(fileVals, "PORT", DefaultPort),
		DBURL:            mustGetEnv(fileVals, "DB_URL"),
		JWTSecret:        mustGetEnv(fileVals, "JWT_SECRET"),
		JWTExpiryMin:     getEnvAsInt(fileVals, "JWT_EXPIRY_MIN", DefaultJWTExpiryMin),
		CookieExpiryDays: getEnvAsInt(fileVals, "COOKIE_EXPIRY_DAYS", DefaultCookieExpiryDays),
		CORSOrigins:      getEnv(fileVals, "CORS_ORIGINS", DefaultCORSOrigins),
	}
}

func getEnv(fileVals map[string]string, key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := fileVals[key]; value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(fileVals map[string]string, key string) string {
	if value := getEnv(fileVals, key, ""); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(fileVals map[string]string, key string, defaultVal int) int {
	valStr := getEnv(fileVals, key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
