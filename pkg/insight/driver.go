// Package insight talks to a generative-text service for daily insights,
// rewrites, summaries and tag suggestions. Every call degrades to a fixed
// fallback; failures never reach the caller as errors.
package insight

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by drivers that cannot reach a service, for
// example because no API key is configured.
var ErrUnavailable = errors.New("insight: no generative service configured")

// Format tells a driver what shape the response must have.
type Format int

const (
	// FormatText is free text.
	FormatText Format = iota
	// FormatInsight is a JSON object {"text": string, "type": Kind}.
	FormatInsight
	// FormatTags is a JSON array of strings, or an object {"tags": [...]}
	// for services that only emit objects.
	FormatTags
)

// Request is one generation call.
type Request struct {
	System string
	Prompt string
	Format Format
}

// Driver is a generative-text backend.
type Driver interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Offline never reaches a service.
type Offline struct{}

func (Offline) Name() string { return "none" }

func (Offline) Generate(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}
