// Package gemini drives Google's Gemini models through generative-ai-go.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
)

const (
	NAME         = "gemini"
	DefaultModel = "gemini-1.5-flash"
)

type Driver struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Driver {
	if model == "" {
		model = DefaultModel
	}
	return &Driver{apiKey: apiKey, model: model}
}

func (d *Driver) Name() string { return NAME }

func (d *Driver) Generate(ctx context.Context, req insight.Request) (string, error) {
	if d.apiKey == "" {
		return "", insight.ErrUnavailable
	}
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", d.model))

	client, err := genai.NewClient(ctx, option.WithAPIKey(d.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(d.model)
	configure(model, req)

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return responseText(resp)
}

func configure(model *genai.GenerativeModel, req insight.Request) {
	if req.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}
	if schema := schemaFor(req.Format); schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = schema
	}
}

func schemaFor(f insight.Format) *genai.Schema {
	switch f {
	case insight.FormatInsight:
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"text": {Type: genai.TypeString},
				"type": {
					Type: genai.TypeString,
					Enum: []string{
						string(insight.Encouragement),
						string(insight.Observation),
						string(insight.Challenge),
					},
				},
			},
			Required: []string{"text", "type"},
		}
	case insight.FormatTags:
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	default:
		return nil
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("gemini: response had no text")
	}
	return b.String(), nil
}
