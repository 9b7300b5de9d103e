// Package add saves new and edited entries.
package add

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

// ErrBlank is returned when the draft has neither title nor content.
var ErrBlank = errors.New("nothing to save: give a title or some content")

// Add composes Draft into the journal. ID names the entry being edited and
// is empty for a new entry.
type Add struct {
	Service *app.Service
	ID      string
	Draft   entry.Draft

	Summarize   bool
	SuggestTags bool

	ShowID bool
	Out    io.Writer

	// Saved is set once Do stores the entry.
	Saved *entry.Entry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no journal")
	}
	if n.Draft.Blank() {
		return ErrBlank
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	if n.Summarize || n.SuggestTags {
		for _, err := range n.Service.AssistDraft(ctx, &n.Draft, n.Summarize, n.SuggestTags) {
			if err == nil {
				continue
			}
			slog.Warn("assistant unavailable while composing", slog.Any("err", err))
			pp.Warn("assistant unavailable: %v", err)
		}
	}

	e, saved, err := n.Service.Compose(ctx, n.ID, n.Draft)
	if err != nil && e == nil {
		return err
	}
	if !saved {
		return ErrBlank
	}
	n.Saved = e

	pp.NewLine()
	if n.ID == "" {
		pp.Notice("Saved a new memory.")
	} else {
		pp.Notice("Updated.")
	}
	pp.Timeline(e)
	return err
}
