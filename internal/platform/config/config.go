package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultSeedSourceURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Driver string // "sqlite" or "pgx"
	DSN    string // Data Source Name, a file path for sqlite
}

type SeedConfig struct {
	SourceURL string
	Mode      string
	Timeout   time.Duration
}

type LoggerConfig struct {
	Mode     string // "development" or "production"
	Filename string // empty disables file output
}

// LoadDotEnv reads a .env file from the working directory when one exists.
// A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	existing := make([]string, 0, len(filenames))
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + port}
}

// Untuk Transaction Service
func LoadTransactionDBConfig() DBConfig {
	// File-backed SQLite by default; DB_DRIVER=pgx with a postgres:// DSN for Postgres.
	return DBConfig{
		Driver: strings.ToLower(GetEnv("DB_DRIVER", "sqlite")),
		DSN:    GetEnv("DB_DSN", "transactions.db"),
	}
}

func LoadSeedConfig() SeedConfig {
	return SeedConfig{
		SourceURL: GetEnv("SEED_SOURCE_URL", DefaultSeedSourceURL),
		Mode:      strings.ToLower(GetEnv("SEED_MODE", "if-empty")),
		Timeout:   time.Duration(GetEnvAsInt("SEED_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func LoadLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Mode:     GetEnv("LOG_MODE", "development"),
		Filename: GetEnv("LOG_FILE", ""),
	}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
