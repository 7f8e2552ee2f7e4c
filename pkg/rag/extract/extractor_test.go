package extract

import (
	"context"
	"errors"
	"testing"

	"policy-rag-be/internal/pkg/logger"
	"policy-rag-be/pkg/llm"
	"policy-rag-be/pkg/store"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.calls++
	return s.response, s.err
}

type stubStore struct {
	saved []*store.Session
}

func (s *stubStore) Save(sess *store.Session) {
	s.saved = append(s.saved, sess)
}

const analysisJSON = `{
	"residence": "서울",
	"age": "25세",
	"gender": "남성",
	"marital_status": "미혼",
	"user_profile": "25세 서울 거주 미혼 남성",
	"policy_area_of_interest": "주거",
	"specific_keywords": ["월세", "지원"],
	"optimized_search_query": "서울 청년 월세 지원"
}`

func TestExtractHappyPath(t *testing.T) {
	sessions := &stubStore{}
	e := NewExtractor(&stubLLM{response: analysisJSON}, sessions, logger.NewNopLogger())
	sess := store.NewSession("s1")

	profile, query := e.Extract(context.Background(), sess, "저는 25살 서울 사는 미혼 남자인데 월세 지원 받을 수 있나요?")

	if profile != "25세 서울 거주 미혼 남성" {
		t.Errorf("profile = %q", profile)
	}
	if query != "서울 청년 월세 지원" {
		t.Errorf("query = %q", query)
	}
	if len(sessions.saved) != 1 {
		t.Errorf("saves = %d, want 1 (profile adoption persists)", len(sessions.saved))
	}
}

func TestExtractToleratesCodeFences(t *testing.T) {
	fenced := "```json\n" + analysisJSON + "\n```"
	e := NewExtractor(&stubLLM{response: fenced}, &stubStore{}, logger.NewNopLogger())
	sess := store.NewSession("s1")

	_, query := e.Extract(context.Background(), sess, "월세 지원")

	if query != "서울 청년 월세 지원" {
		t.Errorf("query = %q, fenced JSON not parsed", query)
	}
}

func TestExtractDegradesOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{name: "provider error", err: errors.New("timeout")},
		{name: "unparseable output", response: "I could not produce JSON, sorry."},
		{name: "empty output", response: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &stubStore{}
			e := NewExtractor(&stubLLM{response: tt.response, err: tt.err}, sessions, logger.NewNopLogger())
			sess := store.NewSession("s1")

			profile, query := e.Extract(context.Background(), sess, "원본 질문")

			if profile != store.ProfileUnknown {
				t.Errorf("profile = %q, want sentinel", profile)
			}
			if query != "원본 질문" {
				t.Errorf("query = %q, want raw message", query)
			}
			if len(sessions.saved) != 0 {
				t.Errorf("saves = %d, want 0 on degradation", len(sessions.saved))
			}
		})
	}
}

func TestExtractKeepsExistingProfile(t *testing.T) {
	sessions := &stubStore{}
	e := NewExtractor(&stubLLM{response: analysisJSON}, sessions, logger.NewNopLogger())

	sess := store.NewSession("s1")
	sess.Profile = "30세 부산 거주 기혼 여성"

	profile, _ := e.Extract(context.Background(), sess, "청년주택 신청 방법")

	if profile != "30세 부산 거주 기혼 여성" {
		t.Errorf("profile = %q, existing profile overwritten", profile)
	}
	if len(sessions.saved) != 0 {
		t.Errorf("saves = %d, want 0 when no adoption happened", len(sessions.saved))
	}
}

func TestExtractAlwaysRunsAnalysis(t *testing.T) {
	// The analysis call runs every turn even with a known profile: the
	// optimized search query has to track the current question.
	stub := &stubLLM{response: analysisJSON}
	e := NewExtractor(stub, &stubStore{}, logger.NewNopLogger())

	sess := store.NewSession("s1")
	sess.Profile = "25세 서울 거주 미혼 남성"

	e.Extract(context.Background(), sess, "첫 질문")
	e.Extract(context.Background(), sess, "두번째 질문")

	if stub.calls != 2 {
		t.Errorf("generate calls = %d, want 2", stub.calls)
	}
}

func TestExtractEmptySearchQueryFallsBack(t *testing.T) {
	response := `{"user_profile": "정보 없음", "optimized_search_query": "  "}`
	e := NewExtractor(&stubLLM{response: response}, &stubStore{}, logger.NewNopLogger())
	sess := store.NewSession("s1")

	_, query := e.Extract(context.Background(), sess, "원본 질문")

	if query != "원본 질문" {
		t.Errorf("query = %q, want raw message for blank optimized query", query)
	}
}
