package retrieve

import (
	"context"
	"fmt"

	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/contract"
	"policy-rag-be/pkg/embedding"
	"policy-rag-be/pkg/store"
)

// Retrieval policies. Both run through the same code path; the mode only
// changes the limit/threshold handed to the index.
const (
	ModeThreshold = "threshold"
	ModeTopK      = "top_k"
)

// Config encapsulates retrieval parameters
type Config struct {
	Mode           string
	ScoreThreshold float64 // threshold mode: minimum similarity
	MaxDocuments   int     // threshold mode: cap on returned documents
	TopK           int     // top_k mode: fixed count
}

// DefaultConfig returns the retrieval defaults
func DefaultConfig() Config {
	return Config{
		Mode:           ModeThreshold,
		ScoreThreshold: 0.85, // 0.8~0.9 works well for this corpus
		MaxDocuments:   10,
		TopK:           3,
	}
}

// Retriever returns candidate documents for a query, in index order
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]store.Document, error)
}

// VectorRetriever embeds the query and delegates to the pgvector index
type VectorRetriever struct {
	embeddingProvider embedding.EmbeddingProvider
	chunkRepo         contract.PolicyChunkRepository
	config            Config
	logger            logger.ILogger
}

func NewVectorRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	chunkRepo contract.PolicyChunkRepository,
	config Config,
	log logger.ILogger,
) *VectorRetriever {
	return &VectorRetriever{
		embeddingProvider: embeddingProvider,
		chunkRepo:         chunkRepo,
		config:            config,
		logger:            log,
	}
}

func (r *VectorRetriever) Retrieve(ctx context.Context, query string) ([]store.Document, error) {
	embeddingRes, err := r.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	limit := r.config.MaxDocuments
	threshold := r.config.ScoreThreshold
	if r.config.Mode == ModeTopK {
		limit = r.config.TopK
		threshold = 0
	}

	scored, err := r.chunkRepo.SearchSimilarWithScore(ctx, embeddingRes.Embedding.Values, limit, threshold)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	r.logger.Debug("retrieve", "similarity search completed", map[string]interface{}{
		"mode":  r.config.Mode,
		"found": len(scored),
	})

	docs := make([]store.Document, 0, len(scored))
	for _, res := range scored {
		docs = append(docs, store.Document{
			PolicyID: res.Chunk.PolicyID,
			Category: res.Chunk.Category,
			Source:   res.Chunk.Source,
			Content:  res.Chunk.Content,
			Score:    res.Similarity,
			HasScore: true,
		})
	}

	return docs, nil
}
