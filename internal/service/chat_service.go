package service

import (
	"context"
	"strings"

	"policy-rag-be/internal/constant"
	"policy-rag-be/internal/dto"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/internal/repository/memory"
	"policy-rag-be/pkg/llm"
	"policy-rag-be/pkg/rag"
	"policy-rag-be/pkg/rag/classify"
	"policy-rag-be/pkg/rag/extract"
	"policy-rag-be/pkg/rag/prompt"
	"policy-rag-be/pkg/rag/reference"
	"policy-rag-be/pkg/rag/retrieve"
	"policy-rag-be/pkg/store"
)

// Number of documents concatenated into the grounded prompt; the rest
// become the reference list.
const primaryContextSize = 3

// IChatService defines the chat pipeline interface
type IChatService interface {
	Answer(ctx context.Context, request *dto.ChatRequest) *dto.ChatResponse
	ActiveSessions() int
}

// chatService orchestrates one turn: classify, extract, retrieve, compose,
// persist. Every provider failure is converted to a fixed user-facing string
// here; nothing below the controller sees a raw error.
type chatService struct {
	llmProvider llm.LLMProvider
	classifier  *classify.Classifier
	extractor   *extract.Extractor
	retriever   retrieve.Retriever
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
}

func NewChatService(
	llmProvider llm.LLMProvider,
	classifier *classify.Classifier,
	extractor *extract.Extractor,
	retriever retrieve.Retriever,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		llmProvider: llmProvider,
		classifier:  classifier,
		extractor:   extractor,
		retriever:   retriever,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

// Answer runs the full pipeline for one message. It always returns a
// response payload; failures map to fixed Korean strings.
func (cs *chatService) Answer(ctx context.Context, request *dto.ChatRequest) *dto.ChatResponse {
	sessionID := request.SessionId
	message := request.UserMessage

	// Out-of-domain questions are rejected before any session mutation so
	// off-domain turns never pollute the conversation window.
	if !cs.classifier.Classify(ctx, message) {
		cs.logger.Info("chat", "question rejected as out-of-domain", map[string]interface{}{
			"session_id": sessionID,
			"question":   truncate(message, 80),
		})
		return &dto.ChatResponse{Response: constant.OutOfDomainResponse}
	}

	// One session's read-retrieve-persist span runs under its lock;
	// concurrent turns on the same id would otherwise lose history updates.
	unlock := cs.sessionRepo.Lock(sessionID)
	defer unlock()

	sess := cs.sessionRepo.GetOrCreate(sessionID)

	profile, searchQuery := cs.extractor.Extract(ctx, sess, message)

	searchTerms := strings.TrimSpace(searchQuery)
	if searchTerms == "" {
		searchTerms = message
	}

	docs, err := cs.retriever.Retrieve(ctx, searchTerms)
	if err != nil {
		cs.logger.Error("chat", "retrieval failed", map[string]interface{}{
			"session_id": sessionID,
			"query":      searchTerms,
			"error":      err.Error(),
		})
		return &dto.ChatResponse{Response: constant.GenerationErrorResponse}
	}

	if len(docs) == 0 {
		return cs.composeFallback(ctx, sess, profile, message, searchQuery)
	}
	return cs.composeGrounded(ctx, sess, profile, message, searchQuery, docs)
}

func (cs *chatService) composeGrounded(
	ctx context.Context,
	sess *store.Session,
	profile, question, searchQuery string,
	docs []store.Document,
) *dto.ChatResponse {
	top, rest := rag.TopByScore(docs, primaryContextSize)

	qaPrompt, err := prompt.BuildGrounded(profile, sess.History, top, question, searchQuery)
	if err != nil {
		cs.logger.Error("chat", "grounded prompt build failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return &dto.ChatResponse{Response: constant.GenerationErrorResponse}
	}

	answer, err := cs.llmProvider.Generate(ctx, qaPrompt)
	if err != nil {
		cs.logger.Error("chat", "grounded generation failed", map[string]interface{}{
			"session_id": sess.ID,
			"question":   truncate(question, 80),
			"error":      err.Error(),
		})
		return &dto.ChatResponse{Response: constant.GenerationErrorResponse}
	}

	cs.persistTurn(sess, question, answer)

	cs.logger.Info("chat", "grounded answer generated", map[string]interface{}{
		"session_id":     sess.ID,
		"context_docs":   len(top),
		"reference_docs": len(rest),
	})

	return &dto.ChatResponse{
		Response:      answer,
		RemainingDocs: reference.FromDocuments(rest),
	}
}

func (cs *chatService) composeFallback(
	ctx context.Context,
	sess *store.Session,
	profile, question, searchQuery string,
) *dto.ChatResponse {
	cs.logger.Warn("chat", "no documents found, composing fallback", map[string]interface{}{
		"session_id": sess.ID,
		"query":      searchQuery,
	})

	fallbackPrompt, err := prompt.BuildFallback(profile, sess.History, question, searchQuery)
	if err != nil {
		cs.logger.Error("chat", "fallback prompt build failed", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return &dto.ChatResponse{Response: constant.GenerationErrorResponse}
	}

	answer, err := cs.llmProvider.Generate(ctx, fallbackPrompt)
	if err != nil {
		cs.logger.Error("chat", "fallback generation failed", map[string]interface{}{
			"session_id": sess.ID,
			"question":   truncate(question, 80),
			"error":      err.Error(),
		})
		return &dto.ChatResponse{Response: constant.GenerationErrorResponse}
	}

	// Fallback answers persist to history the same as grounded ones, so a
	// follow-up question still sees the exchange.
	cs.persistTurn(sess, question, answer)

	return &dto.ChatResponse{Response: answer}
}

func (cs *chatService) persistTurn(sess *store.Session, input, output string) {
	sess.AppendTurn(input, output)
	cs.sessionRepo.Save(sess)
}

// ActiveSessions returns the live session count for /health
func (cs *chatService) ActiveSessions() int {
	return cs.sessionRepo.Count()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
