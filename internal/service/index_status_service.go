package service

import (
	"context"

	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/contract"
)

// IIndexStatusService reports vector index availability for /health and the
// degraded /chat path
type IIndexStatusService interface {
	RagEnabled() bool
	DocumentCount(ctx context.Context) int64
}

type indexStatusService struct {
	chunkRepo contract.PolicyChunkRepository // nil when the index failed to initialize
	logger    logger.ILogger
}

func NewIndexStatusService(chunkRepo contract.PolicyChunkRepository, log logger.ILogger) IIndexStatusService {
	return &indexStatusService{
		chunkRepo: chunkRepo,
		logger:    log,
	}
}

func (s *indexStatusService) RagEnabled() bool {
	return s.chunkRepo != nil
}

func (s *indexStatusService) DocumentCount(ctx context.Context) int64 {
	if s.chunkRepo == nil {
		return 0
	}
	count, err := s.chunkRepo.Count(ctx)
	if err != nil {
		s.logger.Warn("health", "vectorstore count failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0
	}
	return count
}
