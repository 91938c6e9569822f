package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all process configuration resolved at startup
type Config struct {
	Env            string
	Addr           string
	BaseURL        string
	DatabaseDSN    string
	MigrationsPath string
	GCSBucket      string
	GCSCredentials string
	AdminPassword  string
	AuthSecret     string
	RedisAddr      string
	ChromePath     string
}

// Load reads configuration from .env (development only), environment
// variables, and command-line flags, in that order of increasing priority.
func Load() (*Config, error) {
	if os.Getenv("ENV") != "production" {
		// Use Overload so .env values override stale system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("✓ Loaded environment variables from .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("MIGRATIONS_PATH", "migrations")

	flags := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	port := flags.String("port", "", "listen port (overrides PORT)")
	migrationsPath := flags.String("migrations-path", "", "path to SQL migrations (overrides MIGRATIONS_PATH)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	if *port != "" {
		v.Set("PORT", *port)
	}
	if *migrationsPath != "" {
		v.Set("MIGRATIONS_PATH", *migrationsPath)
	}

	cfg := &Config{
		Env:            v.GetString("ENV"),
		BaseURL:        v.GetString("BASE_URL"),
		DatabaseDSN:    databaseDSN(v),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		GCSBucket:      v.GetString("GCS_BUCKET"),
		GCSCredentials: v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		AuthSecret:     v.GetString("AUTH_SECRET"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		ChromePath:     v.GetString("CHROME_PATH"),
	}

	// PORT from some hosts arrives with a leading colon
	p := v.GetString("PORT")
	if len(p) > 0 && p[0] == ':' {
		p = p[1:]
	}
	cfg.Addr = "0.0.0.0:" + p

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is not set")
	}
	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("AUTH_SECRET environment variable is not set")
	}
	if cfg.GCSBucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET environment variable is not set")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// databaseDSN returns DATABASE_URL if set, otherwise builds a keyword/value
// DSN from the individual DB_* variables.
func databaseDSN(v *viper.Viper) string {
	if dsn := v.GetString("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := v.GetString("DB_HOST")
	user := v.GetString("DB_USER")
	dbname := v.GetString("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}

	port := v.GetString("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := v.GetString("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, v.GetString("DB_PASSWORD"), dbname, sslmode)
}
