// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"policy-rag-be/internal/dto"
	"policy-rag-be/internal/entity"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/contract"
	"policy-rag-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	Processed() int64
}

// consumerService turns embed-chunk events into policy_chunks rows
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	chunkRepo         contract.PolicyChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger

	processed atomic.Int64
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chunkRepo contract.PolicyChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		chunkRepo:         chunkRepo,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// Processed returns how many chunk events have been handled, including ones
// that failed and were acked to avoid infinite retry.
func (cs *consumerService) Processed() int64 {
	return cs.processed.Load()
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer cs.processed.Add(1)

	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ingest", "failed to unmarshal chunk message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	embeddingRes, err := cs.embeddingProvider.Generate(payload.Content, embedding.TaskRetrievalDocument)
	if err != nil {
		cs.logger.Error("ingest", "embedding failed for chunk", map[string]interface{}{
			"policy_id":   payload.PolicyID,
			"chunk_index": payload.ChunkIndex,
			"error":       err.Error(),
		})
		msg.Ack()
		return
	}

	chunk := &entity.PolicyChunk{
		Id:         uuid.New(),
		PolicyID:   payload.PolicyID,
		Category:   payload.Category,
		Source:     payload.Source,
		URL:        payload.URL,
		Content:    payload.Content,
		ChunkIndex: payload.ChunkIndex,
		Embedding:  embeddingRes.Embedding.Values,
		CreatedAt:  time.Now(),
	}

	if err := cs.chunkRepo.CreateBulk(ctx, []*entity.PolicyChunk{chunk}); err != nil {
		cs.logger.Error("ingest", "failed to persist chunk", map[string]interface{}{
			"policy_id":   payload.PolicyID,
			"chunk_index": payload.ChunkIndex,
			"error":       err.Error(),
		})
		msg.Ack()
		return
	}

	msg.Ack()
}
