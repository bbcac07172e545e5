package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverMySQL = "mysql"
	StoreDriverFile  = "file"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Store    StoreConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Session  SessionConfig
}

// StoreConfig selects the record store backing the master data
type StoreConfig struct {
	Driver  string // "mysql" or "file"
	DataDir string // blob directory for the file driver
}

// DatabaseConfig holds database configuration (mysql driver only)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// SessionConfig holds the display-only session timer settings. The timer
// counts down in the console top bar but never forces a logout.
type SessionConfig struct {
	TimerMins int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	storeDriver := strings.TrimSpace(getEnv("STORE_DRIVER", StoreDriverMySQL))
	if storeDriver != StoreDriverMySQL && storeDriver != StoreDriverFile {
		return nil, fmt.Errorf("invalid STORE_DRIVER: '%s' (must be 'mysql' or 'file')", storeDriver)
	}

	timerMins, _ := strconv.Atoi(getEnv("SESSION_TIMER_MINUTES", "30"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Store: StoreConfig{
			Driver:  storeDriver,
			DataDir: getEnv("STORE_DATA_DIR", "./data"),
		},
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Session:  SessionConfig{TimerMins: timerMins},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORE: %s]", appMode, storeDriver)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "masterdesk"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	// Access tokens default to the session timer length (30 minutes).
	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "30"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_DAYS", "7"))

	return JWTConfig{
		Secret:           getEnv(prefix+"JWT_SECRET", "default_secret"),
		RefreshSecret:    getEnv(prefix+"JWT_REFRESH_SECRET", "default_refresh_secret"),
		AccessTokenMins:  accessMins,
		RefreshTokenDays: refreshDays,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// UsesDatabase returns true when the mysql store driver is selected
func (c *Config) UsesDatabase() bool {
	return c.Store.Driver == StoreDriverMySQL
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://masterdesk.example.com"
	}
	return origins
}
