package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"policy-rag-be/internal/entity"
	"policy-rag-be/internal/model"
	"policy-rag-be/internal/repository/implementation"
	"policy-rag-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const embeddingDims = 768

func testVector(seed float32) []float32 {
	v := make([]float32, embeddingDims)
	v[0] = seed
	v[1] = 1 - seed
	return v
}

func TestPolicyChunkRepository(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	require.NoError(t, gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error)
	require.NoError(t, gormDB.AutoMigrate(&model.PolicyChunk{}))

	repo := implementation.NewPolicyChunkRepository(gormDB)
	ctx := context.Background()
	policyID := "it-" + uuid.NewString()

	// Cleanup regardless of outcome
	defer func() {
		assert.NoError(t, repo.DeleteByPolicyId(ctx, policyID))
	}()

	t.Run("CreateBulk assigns ids", func(t *testing.T) {
		chunks := []*entity.PolicyChunk{
			{
				Id:         uuid.New(),
				PolicyID:   policyID,
				Category:   "월세지원",
				Source:     "integration",
				Content:    "정책명: 청년월세지원\n월 20만원을 지원합니다.",
				ChunkIndex: 0,
				Embedding:  testVector(1.0),
				CreatedAt:  time.Now(),
			},
			{
				Id:         uuid.New(),
				PolicyID:   policyID,
				Category:   "월세지원",
				Source:     "integration",
				Content:    "정책명: 청년월세지원\n신청 방법 안내.",
				ChunkIndex: 1,
				Embedding:  testVector(0.0),
				CreatedAt:  time.Now(),
			},
		}
		require.NoError(t, repo.CreateBulk(ctx, chunks))
	})

	t.Run("Count sees the inserted rows", func(t *testing.T) {
		count, err := repo.Count(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(2))
	})

	t.Run("SearchSimilarWithScore orders by similarity", func(t *testing.T) {
		results, err := repo.SearchSimilarWithScore(ctx, testVector(1.0), 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, policyID, results[0].Chunk.PolicyID)
		assert.InDelta(t, 1.0, results[0].Similarity, 0.001, "identical vector should score ~1")
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i].Similarity, results[i-1].Similarity)
		}
	})

	t.Run("Threshold filters low-similarity chunks", func(t *testing.T) {
		results, err := repo.SearchSimilarWithScore(ctx, testVector(1.0), 10, 0.99)
		require.NoError(t, err)
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Similarity, 0.99)
		}
	})

	t.Run("DeleteByPolicyId removes every chunk", func(t *testing.T) {
		require.NoError(t, repo.DeleteByPolicyId(ctx, policyID))

		results, err := repo.SearchSimilarWithScore(ctx, testVector(1.0), 10, 0)
		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, policyID, r.Chunk.PolicyID)
		}
	})
}
