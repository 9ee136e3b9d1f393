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
	Port string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret      string
	AdminPIN       string
	AdminJWTExpire time.Duration

	OrderRateLimitPerMin int

	UploadsDir       string
	UploadsBackupDir string

	DevMode bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default %d", k, v, def)
		return def
	}
	return n
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists

	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DBHost:               getenv("DB_HOST", "localhost"),
		DBPort:               getenv("DB_PORT", "5432"),
		DBUser:               getenv("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getenv("DB_NAME", "flipkart"),
		JWTSecret:            getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminPIN:             os.Getenv("ADMIN_PIN"),
		AdminJWTExpire:       time.Duration(getenvInt("ADMIN_JWT_EXPIRE_DAYS", 180)) * 24 * time.Hour,
		OrderRateLimitPerMin: getenvInt("ORDER_RATE_LIMIT_PER_MIN", 60),
		UploadsDir:           getenv("UPLOADS_DIR", "./uploads"),
		UploadsBackupDir:     getenv("UPLOADS_BACKUP_DIR", "./backup/uploads"),
		DevMode:              os.Getenv("APP_ENV") == "development",
	}

	log.Printf("[config] PORT=%s", cfg.Port)
	log.Printf("[config] ORDER_RATE_LIMIT_PER_MIN=%d", cfg.OrderRateLimitPerMin)
	log.Printf("[config] UPLOADS_DIR=%s", cfg.UploadsDir)
	return cfg
}

// DSN builds the Postgres connection string. DATABASE_URL wins when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
