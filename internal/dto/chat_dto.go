package dto

import (
	"policy-rag-be/pkg/rag/reference"
)

type ChatRequest struct {
	SessionId   string `json:"session_id" validate:"required"`
	UserMessage string `json:"user_message" validate:"required"`
}

type ChatResponse struct {
	Response      string                    `json:"response"`
	RemainingDocs []reference.PolicySummary `json:"remaining_docs,omitempty"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	VectorstoreDocs int64  `json:"vectorstore_docs"`
	ActiveSessions  int    `json:"active_sessions"`
	RagEnabled      bool   `json:"rag_enabled"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}
