package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	AllowedOrigins []string

	// Object storage for uploaded assets. Uploads return 503 when these
	// are left empty.
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3BaseURL   string
}

// Load reads configuration from the environment, with a .env file as
// fallback for development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment only")
	}

	return Config{
		Port: getenv("PORT", "8000"),

		DBDSN:             getenv("DB_DSN", "admin:12345678@tcp(127.0.0.1:3306)/teamboard?charset=utf8mb4&parseTime=True&loc=Local"),
		DBMaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getduration("DB_CONN_MAX_LIFETIME", time.Hour),

		JWTSecret: getenv("JWT_SECRET", "supersecretkey"),
		JWTExpiry: getduration("JWT_EXPIRY", 24*time.Hour),

		AllowedOrigins: split(getenv("ALLOWED_ORIGINS", "*")),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3BaseURL:   os.Getenv("S3_BASE_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func split(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
