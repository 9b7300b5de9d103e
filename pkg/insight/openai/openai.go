// Package openai drives any OpenAI-compatible chat completion endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
)

const (
	NAME         = "openai"
	DefaultModel = openai.GPT4oMini
)

type Driver struct {
	client *openai.Client
	model  string
	keyed  bool
}

// New builds a driver. baseURL points at a compatible endpoint; empty uses
// api.openai.com.
func New(token, baseURL, model string) *Driver {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		keyed:  token != "",
	}
}

func (d *Driver) Name() string { return NAME }

func (d *Driver) Generate(ctx context.Context, req insight.Request) (string, error) {
	if !d.keyed {
		return "", insight.ErrUnavailable
	}
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", d.model))

	resp, err := d.client.CreateChatCompletion(ctx, d.request(req))
	if err != nil {
		return "", fmt.Errorf("openai: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (d *Driver) request(req insight.Request) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	out := openai.ChatCompletionRequest{
		Model:    d.model,
		Messages: messages,
	}
	if schema, name := schemaFor(req.Format); schema != nil {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
				Strict: true,
			},
		}
	}
	return out
}

// schemaFor returns the structured-output schema. Tags are wrapped in an
// object because the endpoint only accepts object roots.
func schemaFor(f insight.Format) (*jsonschema.Definition, string) {
	switch f {
	case insight.FormatInsight:
		return &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"text": {Type: jsonschema.String, Description: "One brief insight, at most 20 words."},
				"type": {
					Type: jsonschema.String,
					Enum: []string{
						string(insight.Encouragement),
						string(insight.Observation),
						string(insight.Challenge),
					},
				},
			},
			Required:             []string{"text", "type"},
			AdditionalProperties: false,
		}, "journal_insight"
	case insight.FormatTags:
		return &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"tags": {
					Type:  jsonschema.Array,
					Items: &jsonschema.Definition{Type: jsonschema.String},
				},
			},
			Required:             []string{"tags"},
			AdditionalProperties: false,
		}, "journal_tags"
	default:
		return nil, ""
	}
}
