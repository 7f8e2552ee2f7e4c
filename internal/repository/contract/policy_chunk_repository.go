package contract

import (
	"context"

	"policy-rag-be/internal/entity"
)

// ScoredPolicyChunk wraps PolicyChunk with its similarity score
type ScoredPolicyChunk struct {
	Chunk      *entity.PolicyChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type PolicyChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.PolicyChunk) error
	DeleteByPolicyId(ctx context.Context, policyID string) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore returns chunks with their similarity scores,
	// filtered by threshold, ordered by similarity
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPolicyChunk, error)
}
