package mapper

import (
	"policy-rag-be/internal/entity"
	"policy-rag-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type PolicyChunkMapper struct{}

func NewPolicyChunkMapper() *PolicyChunkMapper {
	return &PolicyChunkMapper{}
}

func (m *PolicyChunkMapper) ToEntity(c *model.PolicyChunk) *entity.PolicyChunk {
	if c == nil {
		return nil
	}

	return &entity.PolicyChunk{
		Id:         c.Id,
		PolicyID:   c.PolicyID,
		Category:   c.Category,
		Source:     c.Source,
		URL:        c.URL,
		Content:    c.Content,
		ChunkIndex: c.ChunkIndex,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *PolicyChunkMapper) ToModel(c *entity.PolicyChunk) *model.PolicyChunk {
	if c == nil {
		return nil
	}

	return &model.PolicyChunk{
		Id:         c.Id,
		PolicyID:   c.PolicyID,
		Category:   c.Category,
		Source:     c.Source,
		URL:        c.URL,
		Content:    c.Content,
		ChunkIndex: c.ChunkIndex,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *PolicyChunkMapper) ToEntities(chunks []*model.PolicyChunk) []*entity.PolicyChunk {
	entities := make([]*entity.PolicyChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
