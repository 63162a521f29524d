package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Azure    AzureConfig
	Chat     ChatConfig
	Survey   SurveyConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AzureConfig struct {
	Endpoint            string
	APIKey              string
	APIVersion          string
	ChatDeployment      string
	EmbeddingDeployment string
}

type ChatConfig struct {
	FAQPath string
	// MatchThreshold is the FAQ-hit cutoff compared inclusively
	// (score >= threshold). The historical deployments disagreed
	// between 0.6 and 0.7, so it is configuration, not a constant.
	MatchThreshold    float64
	ReplyCacheMinutes int
}

type SurveyConfig struct {
	// Strategy selects the row scorer: "embedding" or "judge".
	Strategy string
}

type AuthConfig struct {
	JWTSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Azure: AzureConfig{
			Endpoint:            getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIKey:              getEnv("AZURE_OPENAI_KEY", ""),
			APIVersion:          getEnv("AZURE_API_VERSION", "2024-02-15-preview"),
			ChatDeployment:      getEnv("AZURE_DEPLOYMENT_NAME", "gpt-4o-mini"),
			EmbeddingDeployment: getEnv("AZURE_EMBEDDINGS_DEPLOYMENT_NAME", "text-embedding-3-small"),
		},
		Chat: ChatConfig{
			FAQPath:           getEnv("FAQ_PATH", "assets/faq.txt"),
			MatchThreshold:    getEnvAsFloat("FAQ_MATCH_THRESHOLD", 0.6),
			ReplyCacheMinutes: getEnvAsInt("CHAT_REPLY_CACHE_MINUTES", 10),
		},
		Survey: SurveyConfig{
			Strategy: getEnv("SURVEY_SCORING_STRATEGY", "embedding"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
	}
}

// Validate enforces startup requirements: without a reachable model
// endpoint and a database the process must not serve.
func (c *Config) Validate() error {
	if c.Azure.Endpoint == "" || c.Azure.APIKey == "" {
		return errors.New("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_KEY must be set")
	}
	if c.Database.Connection == "" {
		return errors.New("DB_CONNECTION_STRING must be set")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.Survey.Strategy != "embedding" && c.Survey.Strategy != "judge" {
		return errors.New("SURVEY_SCORING_STRATEGY must be \"embedding\" or \"judge\"")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
