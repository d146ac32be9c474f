package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is populated once at startup and
// passed by reference to the components that need it.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	JWTSecret string

	StripeSecretKey string
	FrontendURL     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	PostmarkServerToken string
	EmailSender         string

	AllowedOrigins []string
}

// Load reads configuration from the environment, applying .env first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		MongoURI:            os.Getenv("MONGO_URI"),
		MongoDatabase:       getEnv("MONGO_DATABASE", "brandm"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:5173"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		PostmarkServerToken: os.Getenv("POSTMARK_SERVER_TOKEN"),
		EmailSender:         os.Getenv("EMAIL_SENDER"),
	}

	origins := getEnv("ALLOWED_ORIGINS", cfg.FrontendURL)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	for name, value := range map[string]string{
		"MONGO_URI":         cfg.MongoURI,
		"JWT_SECRET":        cfg.JWTSecret,
		"STRIPE_SECRET_KEY": cfg.StripeSecretKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s is not configured", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
