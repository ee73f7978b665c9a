package chatgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-planner/internal/domain/culture"
)

func TestGuideReply(t *testing.T) {
	var got ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Храм Неба утром."}}],"usage":{"prompt_tokens":12,"completion_tokens":5,"total_tokens":17}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL+"/")
	require.NoError(t, err)
	guide := NewGuide(client, "gpt-test", 0.3)

	reply, err := guide.Reply(context.Background(), culture.ChatPrompt{
		System:  "guide",
		History: []culture.ChatTurn{{Role: "user", Text: "Привет"}, {Role: "model", Text: "Здравствуйте"}},
		Message: "Что посмотреть?",
	})
	require.NoError(t, err)
	require.Equal(t, "Храм Неба утром.", reply.Text)
	require.Equal(t, 17, reply.Usage.TotalTokens)

	require.Equal(t, "gpt-test", got.Model)
	require.Equal(t, []Message{
		{Role: "system", Content: "guide"},
		{Role: "user", Content: "Привет"},
		{Role: "assistant", Content: "Здравствуйте"},
		{Role: "user", Content: "Что посмотреть?"},
	}, got.Messages)
}

func TestGuideReplyHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient("k", server.URL)
	require.NoError(t, err)

	_, err = NewGuide(client, "m", 0).Reply(context.Background(), culture.ChatPrompt{Message: "hi"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("  ", "")
	require.Error(t, err)
}
