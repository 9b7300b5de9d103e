package insight

import (
	"fmt"
	"strings"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
)

// Mode selects an enhancement rewrite.
type Mode string

const (
	ModeGrammar      Mode = "grammar"
	ModeExpand       Mode = "expand"
	ModeTonePositive Mode = "tone_positive"
)

func Modes() []Mode {
	return []Mode{ModeGrammar, ModeExpand, ModeTonePositive}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeGrammar, ModeExpand, ModeTonePositive:
		return m, nil
	case "positive", "tone":
		return ModeTonePositive, nil
	default:
		return "", fmt.Errorf("unknown enhance mode %q (expected grammar, expand or tone_positive)", s)
	}
}

const (
	systemGrammar = "You are a professional copy editor. Your task is to fix grammar and spelling errors in the input text. " +
		"Maintain the original tone and style. Output STRICTLY the corrected text only. " +
		"Do not provide explanations, conversational filler, lists of options, or markdown formatting."
	systemExpand = "You are a creative writing assistant. Expand the input text with more descriptive detail " +
		"while strictly maintaining the original perspective and voice. Output STRICTLY the expanded text only."
	systemTonePositive = "You are an empathetic writing coach. Rewrite the input text to sound more optimistic, " +
		"hopeful, and grateful. Output STRICTLY the rewritten text only."
	systemSummary = "You are a concise summarizer. Create a 1 sentence summary (max 15 words) of the following journal entry. " +
		"Capture the core emotion or event. Output STRICTLY the summary text only."
)

func systemFor(m Mode) string {
	switch m {
	case ModeExpand:
		return systemExpand
	case ModeTonePositive:
		return systemTonePositive
	default:
		return systemGrammar
	}
}

func insightPrompt(name string, recent []*entry.Entry) string {
	lines := make([]string, 0, len(recent))
	for _, e := range recent {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", e.Date, e.Title, e.Content))
	}
	return fmt.Sprintf("Analyze these recent journal entries for %s and provide a single brief, profound insight "+
		"or encouraging observation (max 20 words).\nEntries: %s", name, strings.Join(lines, "\n"))
}

func tagsPrompt(content string) string {
	return "Generate a list of 5-7 relevant, concise tags (single words or short phrases, lowercase) for the following journal entry.\n" +
		"Output STRICTLY a JSON array of strings.\nEntry: " + content
}
