package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	MongoURI      string
	DatabaseName  string
	Origin        string
	JWTSecret     string
	AllowRegister bool
	WebDir        string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	AWSRegion string
	AWSBucket string

	Timeout time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with default values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("APP_ENV", "development"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:  getEnv("DATABASE_NAME", "bnb_backend"),
		Origin:        getEnv("ORIGIN", "http://localhost:3000"),
		JWTSecret:     getEnv("JWT_SECRET", "yourfallbacksecret"),
		AllowRegister: getEnvBool("ALLOW_REGISTER", false),
		WebDir:        getEnv("WEB_DIR", "./web"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSBucket:     getEnv("AWS_BUCKET_NAME", ""),
		Timeout:       10 * time.Second,
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
