// Package key provides CLI helpers to display the mood legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

// Key prints the moods an entry can carry with the words that select them.
type Key struct {
	Out io.Writer
}

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}

// Do renders the mood key.
func (k *Key) Do(_ context.Context) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Meaning"), bold.Sprint("Flag"), bold.Sprint("Aliases"))
	for _, g := range mood.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning, g.Key, faint.Sprint(strings.Join(g.Aliases, ", ")))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), "")
	_, _ = fmt.Fprintln(k.out(), tbl)
	_, _ = fmt.Fprintln(k.out(), "")
	return nil
}
