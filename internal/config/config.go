package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env           string
	HTTPAddr      string
	VenueAPIURL   string
	JWTSecret     string
	PublicBaseURL string
	MercadoPago   MercadoPagoConfig
	S3            S3Config
	Logging       LoggingConfig
}

type MercadoPagoConfig struct {
	PublicKey   string
	RedirectURL string
}

type S3Config struct {
	Endpoint       string
	PublicEndpoint string
	Bucket         string
	AccessKey      string
	SecretKey      string
	Region         string
	UseSSL         bool
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:           getenv("APP_ENV", "dev"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		VenueAPIURL:   os.Getenv("VENUE_API_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", ""),
		MercadoPago: MercadoPagoConfig{
			PublicKey:   os.Getenv("MP_PUBLIC_KEY"),
			RedirectURL: getenv("MP_REDIRECT_URL", "https://www.mercadopago.com.ar/checkout/v1/redirect"),
		},
		S3: S3Config{
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			PublicEndpoint: os.Getenv("S3_PUBLIC_ENDPOINT"),
			Bucket:         os.Getenv("S3_BUCKET"),
			AccessKey:      os.Getenv("S3_ACCESS_KEY"),
			SecretKey:      os.Getenv("S3_SECRET_KEY"),
			Region:         getenv("S3_REGION", "us-east-1"),
			UseSSL:         getenvBool("S3_USE_SSL", true),
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}

	if cfg.VenueAPIURL == "" {
		return nil, fmt.Errorf("VENUE_API_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
