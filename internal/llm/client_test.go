package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClientGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", "key", "test-model", nil)
	out, err := client.Generate(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "hello" {
		t.Fatalf("unexpected output %q", out)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "prompt" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestHTTPClientGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http status", status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down"}}`},
		{name: "api error", status: http.StatusOK, body: `{"error":{"message":"bad model"}}`},
		{name: "empty choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "bad json", status: http.StatusOK, body: `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := NewHTTPClient(srv.URL, "key", "m", nil).Generate(context.Background(), "", "prompt"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestMockClientRecordsCalls(t *testing.T) {
	m := &MockClient{Response: "ok"}
	out, err := m.Generate(context.Background(), "sys", "hi")
	if err != nil || out != "ok" {
		t.Fatalf("unexpected result %q, %v", out, err)
	}
	if m.Calls != 1 || m.LastSystem != "sys" || m.LastPrompt != "hi" {
		t.Fatalf("unexpected mock state %+v", m)
	}
}
