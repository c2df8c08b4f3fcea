package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	Port          string
	Origin        string // CORS
	SessionSecret string
	UsersFile     string

	// Backing store. "sheets" talks to Google Sheets; "memory" keeps rows
	// in process for local development.
	Store                 string
	SpreadsheetID         string
	SheetName             string
	SheetsCredentialsFile string
	SheetsCredentialsJSON string // inline service-account JSON, wins over the file
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		Env:           env("APP_ENV", "dev"),
		Port:          env("API_PORT", "8080"),
		Origin:        env("CORS_ORIGIN", "http://localhost:3000"),
		SessionSecret: env("SESSION_SECRET", "dev-session-secret"),
		UsersFile:     env("USERS_FILE", "users.yaml"),

		Store:                 env("TICKET_STORE", "sheets"),
		SpreadsheetID:         env("SPREADSHEET_ID", ""),
		SheetName:             env("SHEET_NAME", "Sheet1"),
		SheetsCredentialsFile: env("GOOGLE_SHEETS_CREDENTIALS_FILE", "credentials.json"),
		SheetsCredentialsJSON: env("GOOGLE_SHEETS_CREDENTIALS", ""),
	}
}
