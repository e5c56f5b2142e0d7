package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded once at startup.
type Config struct {
	Port           string
	AllowedOrigins []string
	// DatabaseURL is optional; without it the order archive stays
	// in memory.
	DatabaseURL string
	// OrderPhone is the number behind the order-confirmation deep link.
	OrderPhone string
	// MenuFile is an optional YAML menu; empty means the built-in menu.
	MenuFile string
	// Admin dashboard credentials.
	AdminUser     string
	AdminPassword string
	JWTSecret     string
}

// Load reads .env (outside production) and the environment.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return Config{
		Port:           getEnvDefault("PORT", "8080"),
		AllowedOrigins: getEnvListDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		OrderPhone:     getEnvDefault("ORDER_PHONE", "212661234567"),
		MenuFile:       os.Getenv("MENU_FILE"),
		AdminUser:      os.Getenv("ADMIN_USER"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvListDefault(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
