package config

import "os"

// Config holds all server settings, sourced from the environment.
type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string

	// UploadDir is where document files live on disk; they are served
	// back under /uploads/.
	UploadDir string

	// Admin login. AdminPasswordHash is a bcrypt hash; the plaintext
	// password is never configured.
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
}

// Load reads configuration from the environment with dev defaults.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       getTablePrefix(env),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
	}
}

// getTablePrefix returns the table prefix for the environment, so dev,
// test and prod can share one database.
func getTablePrefix(env string) string {
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
