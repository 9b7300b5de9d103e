package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
)

// Kind classifies an insight.
type Kind string

const (
	Encouragement Kind = "encouragement"
	Observation   Kind = "observation"
	Challenge     Kind = "challenge"
)

// Insight is a short reflection on recent entries. It is never persisted.
type Insight struct {
	Text string `json:"text"`
	Type Kind   `json:"type"`
}

// FallbackInsight is shown whenever the service cannot produce one.
var FallbackInsight = Insight{
	Text: "Consistency is key. Keep writing your story.",
	Type: Encouragement,
}

// RecentLimit is how many entries feed a daily insight.
const RecentLimit = 5

// Result carries a value that is always usable. Fallback is set, with the
// cause in Reason, when Value is the degraded default.
type Result[T any] struct {
	Value    T
	Fallback bool
	Reason   error
}

// Assistant wraps a Driver with prompts, parsing, timeouts and fallbacks.
type Assistant struct {
	driver  Driver
	timeout time.Duration
	log     *slog.Logger
}

func New(d Driver, timeout time.Duration, log *slog.Logger) *Assistant {
	if d == nil {
		d = Offline{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Assistant{driver: d, timeout: timeout, log: log}
}

// Available reports whether a real service is configured.
func (a *Assistant) Available() bool {
	_, offline := a.driver.(Offline)
	return !offline
}

func (a *Assistant) DriverName() string {
	return a.driver.Name()
}

// Insight reflects on recent entries for the named user.
func (a *Assistant) Insight(ctx context.Context, name string, recent []*entry.Entry) Result[Insight] {
	if len(recent) == 0 {
		return Result[Insight]{Value: FallbackInsight, Fallback: true, Reason: errors.New("insight: no entries yet")}
	}
	raw, err := a.generate(ctx, "insight", Request{Prompt: insightPrompt(name, recent), Format: FormatInsight})
	if err != nil {
		return Result[Insight]{Value: FallbackInsight, Fallback: true, Reason: err}
	}
	var in Insight
	if err := json.Unmarshal([]byte(stripFences(raw)), &in); err != nil {
		return a.insightFallback(fmt.Errorf("insight: decoding response: %w", err))
	}
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return a.insightFallback(errors.New("insight: empty response"))
	}
	switch in.Type {
	case Encouragement, Observation, Challenge:
	default:
		in.Type = Observation
	}
	return Result[Insight]{Value: in}
}

func (a *Assistant) insightFallback(err error) Result[Insight] {
	a.log.Warn("insight: falling back", "call", "insight", "err", err)
	return Result[Insight]{Value: FallbackInsight, Fallback: true, Reason: err}
}

// Enhance rewrites text in the given mode. The original text is the
// fallback.
func (a *Assistant) Enhance(ctx context.Context, text string, mode Mode) Result[string] {
	if strings.TrimSpace(text) == "" {
		return Result[string]{Value: text}
	}
	raw, err := a.generate(ctx, "enhance", Request{System: systemFor(mode), Prompt: text, Format: FormatText})
	if err != nil {
		return Result[string]{Value: text, Fallback: true, Reason: err}
	}
	out := stripFences(raw)
	if out == "" {
		return Result[string]{Value: text, Fallback: true, Reason: errors.New("insight: empty response")}
	}
	return Result[string]{Value: out}
}

// Summarize condenses text to one short sentence. The fallback is "".
func (a *Assistant) Summarize(ctx context.Context, text string) Result[string] {
	if strings.TrimSpace(text) == "" {
		return Result[string]{}
	}
	raw, err := a.generate(ctx, "summarize", Request{System: systemSummary, Prompt: text, Format: FormatText})
	if err != nil {
		return Result[string]{Fallback: true, Reason: err}
	}
	return Result[string]{Value: strings.TrimSpace(raw)}
}

// Tags suggests lowercase tags for text. The fallback is an empty list.
func (a *Assistant) Tags(ctx context.Context, text string) Result[[]string] {
	if strings.TrimSpace(text) == "" {
		return Result[[]string]{Value: []string{}}
	}
	raw, err := a.generate(ctx, "tags", Request{Prompt: tagsPrompt(text), Format: FormatTags})
	if err != nil {
		return Result[[]string]{Value: []string{}, Fallback: true, Reason: err}
	}
	tags, err := decodeTags(stripFences(raw))
	if err != nil {
		a.log.Warn("insight: falling back", "call", "tags", "err", err)
		return Result[[]string]{Value: []string{}, Fallback: true, Reason: err}
	}
	return Result[[]string]{Value: tags}
}

func (a *Assistant) generate(ctx context.Context, call string, req Request) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := a.driver.Generate(ctx, req)
	if err != nil {
		a.log.Warn("insight: falling back", "call", call, "driver", a.driver.Name(), "err", err)
		return "", err
	}
	a.log.Debug("insight: generated", "call", call, "driver", a.driver.Name(), "elapsed", time.Since(start))
	return out, nil
}

func decodeTags(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		var wrapped struct {
			Tags []string `json:"tags"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapped); err2 != nil {
			return nil, fmt.Errorf("insight: decoding tags: %w", err)
		}
		list = wrapped.Tags
	}
	out := lo.FilterMap(list, func(t string, _ int) (string, bool) {
		t = strings.ToLower(strings.TrimSpace(t))
		return t, t != ""
	})
	return lo.Uniq(out), nil
}

var (
	leadingFence  = regexp.MustCompile("(?i)^```(markdown|text|json)?\\s*\\n")
	trailingFence = regexp.MustCompile("\\n?```\\s*$")
)

// stripFences removes a markdown code fence wrapped around a response.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
