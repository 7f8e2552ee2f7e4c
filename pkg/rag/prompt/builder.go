package prompt

import (
	"strings"

	"policy-rag-be/internal/constant"
	"policy-rag-be/pkg/store"
)

var (
	qaTemplate = MustNew("qa_v1", constant.QAPromptV1,
		"user_profile_data", "chat_history", "context", "question", "search_query")

	fallbackTemplate = MustNew("fallback_v1", constant.FallbackPromptV1,
		"user_profile_data", "chat_history", "question", "search_query")
)

// BuildGrounded renders the QA prompt over the primary context documents
func BuildGrounded(profile string, history []store.Turn, contextDocs []store.Document, question, searchQuery string) (string, error) {
	contents := make([]string, 0, len(contextDocs))
	for _, doc := range contextDocs {
		contents = append(contents, doc.Content)
	}

	return qaTemplate.Render(map[string]string{
		"user_profile_data": profile,
		"chat_history":      RenderHistory(history),
		"context":           strings.Join(contents, "\n\n"),
		"question":          question,
		"search_query":      searchQuery,
	})
}

// BuildFallback renders the no-documents prompt
func BuildFallback(profile string, history []store.Turn, question, searchQuery string) (string, error) {
	return fallbackTemplate.Render(map[string]string{
		"user_profile_data": profile,
		"chat_history":      RenderHistory(history),
		"question":          question,
		"search_query":      searchQuery,
	})
}

// RenderHistory flattens the turn window into prompt text, oldest first
func RenderHistory(history []store.Turn) string {
	if len(history) == 0 {
		return "(없음)"
	}

	var b strings.Builder
	for _, turn := range history {
		b.WriteString("사용자: ")
		b.WriteString(turn.Input)
		b.WriteString("\nAI: ")
		b.WriteString(turn.Output)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
