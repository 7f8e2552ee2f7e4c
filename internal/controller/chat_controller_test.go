package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"policy-rag-be/internal/constant"
	"policy-rag-be/internal/dto"
	"policy-rag-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type stubChatService struct {
	response *dto.ChatResponse
	sessions int
	calls    int
}

func (s *stubChatService) Answer(ctx context.Context, request *dto.ChatRequest) *dto.ChatResponse {
	s.calls++
	return s.response
}

func (s *stubChatService) ActiveSessions() int { return s.sessions }

type stubIndexService struct {
	enabled bool
	docs    int64
}

func (s *stubIndexService) RagEnabled() bool                        { return s.enabled }
func (s *stubIndexService) DocumentCount(ctx context.Context) int64 { return s.docs }

func newTestApp(chat *stubChatService, index *stubIndexService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(chat, index).RegisterRoutes(app)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, raw
}

func TestChatHappyPath(t *testing.T) {
	chat := &stubChatService{response: &dto.ChatResponse{Response: "가능합니다."}}
	app := newTestApp(chat, &stubIndexService{enabled: true})

	status, raw := postChat(t, app, `{"session_id":"s1","user_message":"월세 지원 돼?"}`)

	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	var body dto.ChatResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Response != "가능합니다." {
		t.Errorf("response = %q", body.Response)
	}
	if chat.calls != 1 {
		t.Errorf("service calls = %d, want 1", chat.calls)
	}
}

func TestChatRagDisabled(t *testing.T) {
	chat := &stubChatService{response: &dto.ChatResponse{Response: "unused"}}
	app := newTestApp(chat, &stubIndexService{enabled: false})

	status, raw := postChat(t, app, `{"session_id":"s1","user_message":"월세 지원 돼?"}`)

	// Degraded mode still answers 200 with the fixed string.
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(string(raw), constant.RagDisabledResponse) {
		t.Errorf("body = %s, want disabled string", raw)
	}
	if chat.calls != 0 {
		t.Errorf("service calls = %d, want 0", chat.calls)
	}
}

func TestChatValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing session_id", body: `{"user_message":"hi"}`},
		{name: "missing user_message", body: `{"session_id":"s1"}`},
		{name: "malformed json", body: `{"session_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &stubChatService{response: &dto.ChatResponse{Response: "unused"}}
			app := newTestApp(chat, &stubIndexService{enabled: true})

			status, _ := postChat(t, app, tt.body)

			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if chat.calls != 0 {
				t.Errorf("service calls = %d, want 0", chat.calls)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	chat := &stubChatService{sessions: 4}
	app := newTestApp(chat, &stubIndexService{enabled: true, docs: 128})

	res, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}

	var body dto.HealthResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || body.VectorstoreDocs != 128 || body.ActiveSessions != 4 || !body.RagEnabled {
		t.Errorf("health = %+v", body)
	}
}

func TestRoot(t *testing.T) {
	app := newTestApp(&stubChatService{}, &stubIndexService{})

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
}
