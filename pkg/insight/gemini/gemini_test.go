package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
)

func TestGenerateWithoutKeyIsUnavailable(t *testing.T) {
	_, err := New("", "").Generate(context.Background(), insight.Request{Prompt: "hi"})
	assert.True(t, errors.Is(err, insight.ErrUnavailable))
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, DefaultModel, New("k", "").model)
	assert.Equal(t, "gemini-2.0-flash", New("k", "gemini-2.0-flash").model)
}

func TestSchemaFor(t *testing.T) {
	s := schemaFor(insight.FormatInsight)
	require.NotNil(t, s)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"text", "type"}, s.Required)
	assert.Len(t, s.Properties["type"].Enum, 3)

	tags := schemaFor(insight.FormatTags)
	require.NotNil(t, tags)
	assert.Equal(t, genai.TypeArray, tags.Type)
	assert.Equal(t, genai.TypeString, tags.Items.Type)

	assert.Nil(t, schemaFor(insight.FormatText))
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("hello "), genai.Text("world")}},
		}},
	}
	got, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}
