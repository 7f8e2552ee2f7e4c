package entity

import (
	"time"

	"github.com/google/uuid"
)

// PolicyChunk is one embedded slice of a policy document
type PolicyChunk struct {
	Id         uuid.UUID
	PolicyID   string
	Category   string
	Source     string
	URL        string
	Content    string
	ChunkIndex int
	Embedding  []float32
	CreatedAt  time.Time
}
