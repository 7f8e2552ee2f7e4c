package classify

import (
	"context"
	"strings"

	"policy-rag-be/internal/constant"
	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/pkg/llm"
	"policy-rag-be/pkg/rag/prompt"
)

var routingTemplate = prompt.MustNew("routing_v1", constant.RoutingPromptV1, "question")

// Classifier decides whether a question belongs to the housing-policy domain.
// It fails closed: anything that is not a clean "yes" — malformed output,
// empty response, provider failure — routes the question out of domain.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewClassifier(llmProvider llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Classify returns true iff the generator's trimmed, lowercased reply starts
// with "yes".
func (c *Classifier) Classify(ctx context.Context, question string) bool {
	rendered, err := routingTemplate.Render(map[string]string{"question": question})
	if err != nil {
		c.logger.Error("classify", "routing template render failed", map[string]interface{}{"error": err.Error()})
		return false
	}

	response, err := c.llmProvider.Generate(ctx, rendered, llm.WithTemperature(0))
	if err != nil {
		c.logger.Warn("classify", "routing call failed, treating as out-of-domain", map[string]interface{}{
			"error":    err.Error(),
			"question": truncate(question, 80),
		})
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(response)), "yes")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
