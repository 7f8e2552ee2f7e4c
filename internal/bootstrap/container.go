package bootstrap

import (
	"log"

	"policy-rag-be/internal/config"
	"policy-rag-be/internal/controller"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/contract"
	"policy-rag-be/internal/repository/implementation"
	"policy-rag-be/internal/repository/memory"
	"policy-rag-be/internal/service"
	"policy-rag-be/pkg/embedding"
	"policy-rag-be/pkg/llm/factory"
	"policy-rag-be/pkg/rag/classify"
	"policy-rag-be/pkg/rag/extract"
	"policy-rag-be/pkg/rag/retrieve"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	PublisherService service.IPublisherService
	ConsumerService  service.IConsumerService
	IngestService    service.IIngestService

	Logger logger.ILogger
}

// NewContainer wires the full dependency graph. A nil db is allowed: the chat
// surface stays up with retrieval disabled, which /health reports as
// rag_enabled=false.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIKey, "")
		log.Printf("[INFO] Using Embedding Provider: OPENAI")
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	sessionRepo := memory.NewSessionRepository()

	var chunkRepo contract.PolicyChunkRepository
	if db != nil {
		chunkRepo = implementation.NewPolicyChunkRepository(db)
	}

	// 5. Pipeline stages
	classifier := classify.NewClassifier(llmProvider, sysLogger)
	extractor := extract.NewExtractor(llmProvider, sessionRepo, sysLogger)
	retriever := retrieve.NewVectorRetriever(
		embeddingProvider,
		chunkRepo,
		retrieve.Config{
			Mode:           cfg.Retrieval.Mode,
			ScoreThreshold: cfg.Retrieval.ScoreThreshold,
			MaxDocuments:   cfg.Retrieval.MaxDocuments,
			TopK:           cfg.Retrieval.TopK,
		},
		sysLogger,
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Ingest.Topic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingest.Topic,
		chunkRepo,
		embeddingProvider,
		sysLogger,
	)
	ingestService := service.NewIngestService(
		publisherService,
		chunkRepo,
		cfg.Ingest.ChunkSize,
		cfg.Ingest.ChunkOverlap,
		sysLogger,
	)

	chatService := service.NewChatService(
		llmProvider,
		classifier,
		extractor,
		retriever,
		sessionRepo,
		sysLogger,
	)
	indexStatusService := service.NewIndexStatusService(chunkRepo, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService, indexStatusService),

		PublisherService: publisherService,
		ConsumerService:  consumerService,
		IngestService:    ingestService,

		Logger: sysLogger,
	}
}
