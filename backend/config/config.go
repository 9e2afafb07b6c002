package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// NocoDB record service
	NocoHost   string
	NocoBaseID string
	NocoToken  string

	// Table ids per logical table
	UsersTable         string
	CoursesTable       string
	NotificationsTable string

	// Generated field ids for the users table. Reads fall back to the
	// human-readable aliases when these are empty.
	EmailFieldID    string
	PasswordFieldID string
	UserTypeFieldID string

	// Where the session state file lives
	SessionFile string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),

		NocoHost:   getEnv("NOCODB_HOST", "http://localhost:8090"),
		NocoBaseID: getEnv("NOCODB_BASE_ID", ""),
		NocoToken:  getEnv("NOCODB_TOKEN", ""),

		UsersTable:         getEnv("NOCODB_USERS_TABLE", ""),
		CoursesTable:       getEnv("NOCODB_COURSES_TABLE", ""),
		NotificationsTable: getEnv("NOCODB_NOTIFICATIONS_TABLE", ""),

		EmailFieldID:    getEnv("NOCODB_EMAIL_FIELD_ID", ""),
		PasswordFieldID: getEnv("NOCODB_PASSWORD_FIELD_ID", ""),
		UserTypeFieldID: getEnv("NOCODB_USER_TYPE_FIELD_ID", ""),

		SessionFile: getEnv("SESSION_FILE", "session.json"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
