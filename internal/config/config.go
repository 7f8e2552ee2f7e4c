package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Ingest    IngestConfig
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

type AIConfig struct {
	EmbeddingProvider string // "ollama" or "openai"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "ollama" or "openai"
	LLMModel          string // e.g. "llama3", "gpt-4o"
	OpenAIKey         string
}

type RetrievalConfig struct {
	Mode           string  // "threshold" or "top_k"
	ScoreThreshold float64 // threshold mode: minimum similarity
	MaxDocuments   int     // threshold mode: document cap
	TopK           int     // top_k mode: fixed count
}

type IngestConfig struct {
	DataFile     string
	ChunkSize    int
	ChunkOverlap int
	Topic        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o"),
			OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
		},
		Retrieval: RetrievalConfig{
			Mode:           getEnv("RETRIEVAL_MODE", "threshold"),
			ScoreThreshold: getEnvAsFloat("RETRIEVAL_SCORE_THRESHOLD", 0.85),
			MaxDocuments:   getEnvAsInt("RETRIEVAL_MAX_DOCUMENTS", 10),
			TopK:           getEnvAsInt("RETRIEVAL_TOP_K", 3),
		},
		Ingest: IngestConfig{
			DataFile:     getEnv("INGEST_DATA_FILE", "data/seoul_youth_policies_with_url_rag.jsonl"),
			ChunkSize:    getEnvAsInt("INGEST_CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("INGEST_CHUNK_OVERLAP", 200),
			Topic:        getEnv("EMBED_POLICY_CHUNK_TOPIC_NAME", "EMBED_POLICY_CHUNK"),
		},
	}
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
