// Package history draws the writing-activity heatmap.
package history

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

// History prints the heatmap once, or redraws it on every journal change
// when Watch is set.
type History struct {
	Service *app.Service
	Watch   bool
	Now     func() time.Time
	Out     io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not draw history, no journal")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Now == nil {
		n.Now = time.Now
	}

	if !n.Watch {
		n.render()
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	screen := termenv.NewOutput(n.Out)
	screen.ClearScreen()
	n.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			slog.Debug("history: journal changed", slog.String("event", ev.Type.String()))
			if err := n.Service.Reload(ctx); err != nil {
				slog.Warn("history: reload failed", slog.Any("err", err))
				continue
			}
			screen.ClearScreen()
			n.render()
		}
	}
}

func (n *History) render() {
	h := n.Service.History(n.Now())
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title("History")
	pp.Heatmap(h.Grid, h.Total)
}
