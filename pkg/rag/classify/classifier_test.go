package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/pkg/llm"
)

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     bool
	}{
		{name: "plain yes", response: "yes", want: true},
		{name: "uppercase yes", response: "YES", want: true},
		{name: "yes with trailing text", response: "Yes, this is about housing policy.", want: true},
		{name: "yes with surrounding whitespace", response: "  yes\n", want: true},
		{name: "plain no", response: "no", want: false},
		{name: "verbose refusal", response: "No, this question is unrelated.", want: false},
		{name: "yes buried mid-sentence is not a yes", response: "the answer is yes", want: false},
		{name: "empty response fails closed", response: "", want: false},
		{name: "provider error fails closed", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&stubLLM{response: tt.response, err: tt.err}, logger.NewNopLogger())

			got := c.Classify(context.Background(), "청년 월세 지원 알려줘")

			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyRendersQuestionIntoPrompt(t *testing.T) {
	stub := &stubLLM{response: "yes"}
	c := NewClassifier(stub, logger.NewNopLogger())

	c.Classify(context.Background(), "전세자금 대출 조건이 뭐야?")

	if len(stub.prompts) != 1 {
		t.Fatalf("generate calls = %d, want 1", len(stub.prompts))
	}
	if !strings.Contains(stub.prompts[0], "전세자금 대출 조건이 뭐야?") {
		t.Error("rendered prompt does not contain the question")
	}
}
