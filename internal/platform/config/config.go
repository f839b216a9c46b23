package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DataDir      string
	UsersFile    string
	BlogsDir     string
	TemplatesDir string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dataDir := getEnv("DATA_DIR", ".")

	AppConfig = &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		JWTKey:       []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:       time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		DataDir:      dataDir,
		UsersFile:    filepath.Join(dataDir, getEnv("USERS_FILE", "users.txt")),
		BlogsDir:     filepath.Join(dataDir, getEnv("BLOGS_DIR", "blogs")),
		TemplatesDir: getEnv("TEMPLATES_DIR", filepath.Join("web", "templates")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
