package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
)

func TestGenerateWithoutKeyIsUnavailable(t *testing.T) {
	_, err := New("", "", "").Generate(context.Background(), insight.Request{Prompt: "x"})
	assert.ErrorIs(t, err, insight.ErrUnavailable)
}

func TestRequestShape(t *testing.T) {
	d := New("k", "", "")
	req := d.request(insight.Request{System: "sys", Prompt: "hello", Format: insight.FormatTags})

	assert.Equal(t, DefaultModel, req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, "hello", req.Messages[1].Content)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, "journal_tags", req.ResponseFormat.JSONSchema.Name)

	plain := d.request(insight.Request{Prompt: "hello"})
	assert.Len(t, plain.Messages, 1)
	assert.Nil(t, plain.ResponseFormat)
}

func TestGenerateAgainstCompatibleServer(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"tags\":[\"calm\"]}"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	d := New("k", srv.URL+"/v1", "local-model")
	out, err := d.Generate(context.Background(), insight.Request{Prompt: "text", Format: insight.FormatTags})
	require.NoError(t, err)
	assert.Equal(t, `{"tags":["calm"]}`, out)
	assert.Equal(t, "local-model", got.Model)

	res := insight.New(d, 0, nil).Tags(context.Background(), "text")
	assert.False(t, res.Fallback)
	assert.Equal(t, []string{"calm"}, res.Value)
}
