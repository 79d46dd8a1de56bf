package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// JWT
	JWTSecret string

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int

	// Redis
	EnableCache bool
	RedisURL    string

	// Features
	EnableMetrics bool

	// Admin UI
	SlugNonASCII       string
	HelpPopupWidth     string
	HelpPopupMaxHeight string
	RootFolderName     string
	UserGroups         []string
	SystemRoles        []string
	ReservedNames      []string
}

func New() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),

		// CORS
		CORSOrigins: getEnvAsList("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 0),

		// Redis
		EnableCache: getEnvAsBool("ENABLE_CACHE", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Features
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Admin UI
		SlugNonASCII:       getEnv("SLUG_NON_ASCII", "fold"),
		HelpPopupWidth:     getEnv("HELP_POPUP_WIDTH", "700px"),
		HelpPopupMaxHeight: getEnv("HELP_POPUP_MAX_HEIGHT", "90%"),
		RootFolderName:     getEnv("ROOT_FOLDER_NAME", "root"),
		UserGroups:         getEnvAsList("USER_GROUPS", "news,events,docs"),
		SystemRoles:        getEnvAsList("SYSTEM_ROLES", "viewer,editor,publisher,admin"),
		ReservedNames:      getEnvAsList("RESERVED_NAMES", "users,groups,trash,login,logout,my_password"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func getEnvAsList(key, defaultValue string) []string {
	var values []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
