package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	appNameVar = "APP_NAME"
	apiURLVar  = "API_URL"
	folderVar  = "FOLDER"
	logVar     = "LOG_LEVEL"
)

// LoadDotEnv loads a .env file when one exists next to the binary. A
// missing file is not an error - production configuration comes from
// real environment variables.
func LoadDotEnv() {
	_ = godotenv.Load()
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Shop Client")
}

// GetAPIBaseURL returns the base URL of the storefront backend
// (e.g. "https://api.example.com/api/v1")
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, "http://localhost:3000/api/v1")
}

func (EnvVars) GetDataFolder() string {
	if folder := GetEnv(folderVar, ""); folder != "" {
		return folder
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return home + "/.shopclient"
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logVar, "info")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
