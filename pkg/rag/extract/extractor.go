package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"policy-rag-be/internal/constant"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/pkg/llm"
	"policy-rag-be/pkg/rag/prompt"
	"policy-rag-be/pkg/store"
)

var analysisTemplate = prompt.MustNew("analysis_v1", constant.AnalysisPromptV1, "user_input")

// Result is the structured output of the analysis prompt. Only UserProfile
// and OptimizedSearchQuery survive past the current turn.
type Result struct {
	Residence            string          `json:"residence"`
	Age                  string          `json:"age"`
	Gender               string          `json:"gender"`
	MaritalStatus        string          `json:"marital_status"`
	UserProfile          string          `json:"user_profile"`
	PolicyArea           string          `json:"policy_area_of_interest"`
	SpecificKeywords     json.RawMessage `json:"specific_keywords"`
	OptimizedSearchQuery string          `json:"optimized_search_query"`
}

// SessionStore persists extracted profiles
type SessionStore interface {
	Save(session *store.Session)
}

// Extractor derives a user profile and an optimized search query from the raw
// message. The profile is sticky per session; the search query is recomputed
// on every turn, so the analysis call runs even when a profile already exists.
type Extractor struct {
	llmProvider llm.LLMProvider
	sessions    SessionStore
	logger      logger.ILogger
}

func NewExtractor(llmProvider llm.LLMProvider, sessions SessionStore, log logger.ILogger) *Extractor {
	return &Extractor{
		llmProvider: llmProvider,
		sessions:    sessions,
		logger:      log,
	}
}

// Extract returns (profile, searchQuery) for this turn. Any failure — call
// error or unparseable output — degrades to the raw message as the search
// query and leaves the stored profile untouched. It never returns an error.
func (e *Extractor) Extract(ctx context.Context, sess *store.Session, message string) (string, string) {
	profile := sess.Profile
	if profile == "" {
		profile = store.ProfileUnknown
	}

	result, err := e.analyze(ctx, message)
	if err != nil {
		e.logger.Warn("extract", "analysis failed, using raw message as search query", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return profile, message
	}

	if sess.AdoptProfile(result.UserProfile) {
		profile = sess.Profile
		e.sessions.Save(sess)
		e.logger.Info("extract", "user profile extracted", map[string]interface{}{
			"session_id": sess.ID,
			"profile":    profile,
		})
	}

	searchQuery := strings.TrimSpace(result.OptimizedSearchQuery)
	if searchQuery == "" {
		searchQuery = message
	}

	return profile, searchQuery
}

func (e *Extractor) analyze(ctx context.Context, message string) (*Result, error) {
	rendered, err := analysisTemplate.Render(map[string]string{"user_input": message})
	if err != nil {
		return nil, fmt.Errorf("render analysis prompt: %w", err)
	}

	response, err := e.llmProvider.Generate(ctx, rendered, llm.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("analysis call: %w", err)
	}

	result, err := parseResult(response)
	if err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return result, nil
}

// parseResult decodes the analysis JSON, tolerating markdown code fences
// around the object.
func parseResult(response string) (*Result, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
