package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CSVPath string
	DBPath  string
	Table   string

	StoreDriver string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ArchiveEnabled bool
	ArchiveDir     string

	DashboardAddr string
	ChromeBin     string

	LogLevel  string
	LogFormat string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		CSVPath: getEnv("MOVIES_CSV_PATH", "./data/movies.csv"),
		DBPath:  getEnv("MOVIES_DB_PATH", "./data/movies.db"),
		Table:   getEnv("MOVIES_TABLE", "movies"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "movies"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "movies"),
		PostgresDB:       getEnv("POSTGRES_DB", "movies"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ArchiveEnabled: getEnvBool("ARCHIVE_ENABLED", true),
		ArchiveDir:     getEnv("ARCHIVE_DIR", "./data/archive"),

		DashboardAddr: getEnv("DASHBOARD_ADDR", ":8050"),
		ChromeBin:     getEnv("CHROME_BIN", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// StoreDSN returns the connection string for the configured store driver.
// For sqlite it is the database file path.
func (c *Config) StoreDSN() string {
	if c.StoreDriver == "postgres" {
		return c.PostgresDSN()
	}
	return c.DBPath
}

// PostgresDSN returns the PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
