package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AuthMode selects how bearer tokens are verified.
const (
	AuthModeFirebase = "firebase"
	AuthModeLocal    = "local"
)

type Config struct {
	Port    string
	GinMode string

	MongoURI string
	MongoDB  string

	// firebase: verify ID tokens against the Firebase project named by the
	// service-account file. local: HMAC JWTs signed with JWTSecret.
	AuthMode                string
	JWTSecret               string
	FirebaseCredentialsFile string

	StripeSecretKey string

	AllowOrigins []string
	LogLevel     string
}

// Load reads configuration from the environment, honouring a .env file when
// present. Required values missing from the environment fail loading.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getenv("PORT", "8080"),
		GinMode:                 getenv("GIN_MODE", "debug"),
		MongoURI:                os.Getenv("MONGODB_URI"),
		MongoDB:                 getenv("MONGODB_DB", "SoulFinderDB"),
		AuthMode:                getenv("AUTH_MODE", AuthModeFirebase),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		StripeSecretKey:         os.Getenv("STRIPE_SECRET_KEY"),
		LogLevel:                getenv("LOG_LEVEL", "info"),
	}

	origins := getenv("ALLOW_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI must be set")
	}

	switch cfg.AuthMode {
	case AuthModeFirebase:
		if cfg.FirebaseCredentialsFile == "" {
			return nil, fmt.Errorf("FIREBASE_CREDENTIALS_FILE must be set when AUTH_MODE=firebase")
		}
	case AuthModeLocal:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set when AUTH_MODE=local")
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
