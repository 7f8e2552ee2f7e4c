// FILE: internal/service/ingest_service.go
package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"policy-rag-be/internal/dto"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/contract"
	"policy-rag-be/pkg/utils"
)

const policySourceTag = "seoul_youth_policies_with_url_rag"

type IIngestService interface {
	IngestFile(ctx context.Context, path string) (int, error)
}

// ingestService reads line-delimited policy records, chunks the text and
// publishes one embed event per chunk. Re-ingesting a file is idempotent per
// policy id: existing chunks for a record are dropped before its events go out.
type ingestService struct {
	publisher    IPublisherService
	chunkRepo    contract.PolicyChunkRepository
	chunkSize    int
	chunkOverlap int
	logger       logger.ILogger
}

func NewIngestService(
	publisher IPublisherService,
	chunkRepo contract.PolicyChunkRepository,
	chunkSize, chunkOverlap int,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		publisher:    publisher,
		chunkRepo:    chunkRepo,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		logger:       log,
	}
}

// IngestFile returns the number of chunk events published
func (is *ingestService) IngestFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024) // policy records can be long

	published := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record dto.PolicyRecord
		if err := json.Unmarshal(line, &record); err != nil {
			is.logger.Warn("ingest", "skipping malformed record", map[string]interface{}{
				"line":  lineNum,
				"error": err.Error(),
			})
			continue
		}
		if record.Text == "" {
			continue
		}

		if err := is.chunkRepo.DeleteByPolicyId(ctx, record.ID); err != nil {
			return published, fmt.Errorf("clear existing chunks for policy %s: %w", record.ID, err)
		}

		chunks := utils.SplitText(record.Text, is.chunkSize, is.chunkOverlap)
		for i, chunk := range chunks {
			payload := dto.PublishEmbedChunkMessage{
				PolicyID:   record.ID,
				Category:   record.Category,
				Source:     policySourceTag,
				URL:        record.URL,
				Content:    chunk,
				ChunkIndex: i,
			}
			payloadJson, err := json.Marshal(payload)
			if err != nil {
				return published, fmt.Errorf("marshal chunk payload: %w", err)
			}
			if err := is.publisher.Publish(ctx, payloadJson); err != nil {
				return published, fmt.Errorf("publish chunk event: %w", err)
			}
			published++
		}
	}
	if err := scanner.Err(); err != nil {
		return published, fmt.Errorf("read data file: %w", err)
	}

	is.logger.Info("ingest", "file ingested", map[string]interface{}{
		"path":   path,
		"chunks": published,
	})

	return published, nil
}
