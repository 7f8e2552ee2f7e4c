package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type PolicyChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PolicyID   string          `gorm:"type:varchar(64);not null;index"`
	Category   string          `gorm:"type:varchar(128)"`
	Source     string          `gorm:"type:varchar(128)"`
	URL        string          `gorm:"type:text"`
	Content    string          `gorm:"type:text"`
	ChunkIndex int             `gorm:"default:0"` // 0-based index for ordering
	Embedding  pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (PolicyChunk) TableName() string {
	return "policy_chunks"
}
