package prompt

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		vars    []string
		wantErr bool
	}{
		{name: "all placeholders present", body: "Q: {question}\nU: {user}", vars: []string{"question", "user"}},
		{name: "no variables", body: "static body", vars: nil},
		{name: "declared variable missing from body", body: "Q: {question}", vars: []string{"question", "user"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.body, tt.vars...)

			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMustNewPanicsOnBrokenTemplate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic for a missing placeholder")
		}
	}()
	MustNew("broken", "no placeholders here", "question")
}

func TestRender(t *testing.T) {
	tmpl := MustNew("qa", "질문: {question}\n프로필: {profile}", "question", "profile")

	out, err := tmpl.Render(map[string]string{
		"question": "월세 지원 조건은?",
		"profile":  "25세 서울 거주",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(out, "질문: 월세 지원 조건은?") || !strings.Contains(out, "프로필: 25세 서울 거주") {
		t.Errorf("rendered = %q", out)
	}
	if strings.Contains(out, "{") {
		t.Errorf("unsubstituted placeholder left in output: %q", out)
	}
}

func TestRenderMissingValue(t *testing.T) {
	tmpl := MustNew("qa", "질문: {question}", "question")

	_, err := tmpl.Render(map[string]string{})

	if err == nil {
		t.Error("Render() did not fail for a missing value")
	}
}

func TestRenderAllowsEmptyValue(t *testing.T) {
	tmpl := MustNew("qa", "질문: {question}", "question")

	out, err := tmpl.Render(map[string]string{"question": ""})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "질문: " {
		t.Errorf("rendered = %q", out)
	}
}

func TestBuiltinTemplatesConstruct(t *testing.T) {
	// Package-level templates are built with MustNew at init, so importing
	// the package already proves construction. Assert the declared variable
	// sets anyway so a renamed placeholder fails loudly here.
	if got := len(qaTemplate.Vars()); got != 5 {
		t.Errorf("qa template vars = %d, want 5", got)
	}
	if got := len(fallbackTemplate.Vars()); got != 4 {
		t.Errorf("fallback template vars = %d, want 4", got)
	}
}
