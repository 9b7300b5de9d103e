// Package info prints the profile and where the journal lives.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Info) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show profile, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	p, err := n.Service.Profile()
	if err != nil {
		return err
	}
	memories := len(n.Service.Timeline(false))

	if n.JSON {
		return printers.JSON(out, map[string]any{
			"profile":  p.Public(),
			"hasPin":   p.HasPin(),
			"memories": memories,
		})
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Title(p.Name)
	pp.Profile(p, memories)

	if n.Config == nil {
		return nil
	}
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("Journal"), n.Config.BasePath())
	tbl.AddRow(faint.Sprint("Log"), n.Config.LogFile())
	assistant := n.Config.AIProvider()
	if n.Service.Assistant != nil {
		assistant = n.Service.Assistant.DriverName()
		if !n.Service.Assistant.Available() {
			assistant += " (offline)"
		}
	}
	tbl.AddRow(faint.Sprint("Assistant"), assistant)
	if override := os.Getenv("JOURNAL_CONFIG_PATH"); override != "" {
		tbl.AddRow(faint.Sprint("Config path"), override)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
