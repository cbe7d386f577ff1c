package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort           string
	DBDSN             string
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	RedisPassword     string
	JWTSecret         string
	UnsplashBaseURL   string
	UnsplashAccessKey string
	UnsplashTimeout   time.Duration
	ReminderInterval  time.Duration
	ReminderMaxAge    time.Duration
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = getEnv("APP_PORT", "3000")
	Env.DBDSN = os.Getenv("DB_DSN")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = getEnv("MONGO_DB_NAME", "pengelolaan_aset")
	Env.RedisAddr = getEnv("REDIS_ADDR", "127.0.0.1:6379")
	Env.RedisPassword = os.Getenv("REDIS_PASSWORD")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.UnsplashBaseURL = getEnv("UNSPLASH_BASE_URL", "https://api.unsplash.com")
	Env.UnsplashAccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	Env.UnsplashTimeout = getDuration("UNSPLASH_TIMEOUT", 10*time.Second)
	Env.ReminderInterval = getDuration("REMINDER_INTERVAL", 24*time.Hour)
	Env.ReminderMaxAge = getDuration("REMINDER_MAX_AGE", 3*24*time.Hour)
}

func GetJWTSecret() string {
	return Env.JWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
