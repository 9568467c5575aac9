package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// AI Provider
	AIProvider    string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OllamaURL     string
	OllamaModel   string

	// Appointment storage API consumed by the tool adapters. Defaults to
	// this server's own address so a single process serves both sides.
	AppointmentAPIURL string

	// Server
	ServerPort string
	PDFDir     string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "apptpass123"),
		DBName:     getEnv("DB_NAME", "appointments"),

		AIProvider:    getEnv("AI_PROVIDER", "ollama"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaURL:     getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "mistral-nemo:latest"),

		ServerPort: getEnv("SERVER_PORT", "8000"),
		PDFDir:     getEnv("PDF_DIR", "appointment_pdfs"),
	}

	config.AppointmentAPIURL = getEnv("APPOINTMENT_API_URL", "http://localhost:"+config.ServerPort)

	// Validate AI provider configuration
	switch config.AIProvider {
	case "openai":
		if config.OpenAIAPIKey == "" {
			log.Println("WARNING: OPENAI_API_KEY not set")
		}
	case "ollama":
		if config.OllamaURL == "" {
			log.Println("WARNING: OLLAMA_URL not set")
		}
	default:
		log.Printf("WARNING: Unknown AI_PROVIDER: %s (using ollama as fallback)\n", config.AIProvider)
		config.AIProvider = "ollama"
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
