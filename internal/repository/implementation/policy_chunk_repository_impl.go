package implementation

import (
	"context"

	"policy-rag-be/internal/entity"
	"policy-rag-be/internal/mapper"
	"policy-rag-be/internal/model"
	"policy-rag-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PolicyChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PolicyChunkMapper
}

func NewPolicyChunkRepository(db *gorm.DB) contract.PolicyChunkRepository {
	return &PolicyChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewPolicyChunkMapper(),
	}
}

func (r *PolicyChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.PolicyChunk) error {
	models := make([]*model.PolicyChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	// Update IDs back to entities
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PolicyChunkRepositoryImpl) DeleteByPolicyId(ctx context.Context, policyID string) error {
	return r.db.WithContext(ctx).Where("policy_id = ?", policyID).Delete(&model.PolicyChunk{}).Error
}

func (r *PolicyChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PolicyChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores, filtered by threshold
func (r *PolicyChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPolicyChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding <=> query_vector) = cosine_similarity
	type result struct {
		model.PolicyChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("policy_chunks").
		Select("policy_chunks.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scoredChunks := make([]*contract.ScoredPolicyChunk, len(results))
	for i, res := range results {
		chunk := r.mapper.ToEntity(&res.PolicyChunk)
		scoredChunks[i] = &contract.ScoredPolicyChunk{
			Chunk:      chunk,
			Similarity: res.Similarity,
		}
	}
	return scoredChunks, nil
}
