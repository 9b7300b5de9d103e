// Package get lists journal entries.
package get

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
)

// Get prints the entries matching Criteria, newest first. An empty Criteria
// is the home timeline.
type Get struct {
	Service  *app.Service
	Criteria query.Criteria
	Title    string
	Limit    int
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

func (n *Get) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all := n.Service.Search(n.Criteria)
	total := len(all)
	if n.Limit > 0 && n.Limit < len(all) {
		all = all[:n.Limit]
	}

	if n.JSON {
		if all == nil {
			all = []*entry.Entry{}
		}
		return printers.JSON(out, all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	title := n.Title
	if title == "" {
		title = "Timeline"
		if n.Criteria.FavoritesOnly {
			title = "Favorites"
		}
	}
	pp.NewLine()
	pp.TitleWithCount(title, total)
	pp.Timeline(all...)
	return nil
}

// Show prints one entry in full.
type Show struct {
	Service *app.Service
	ID      string
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no journal")
	}
	e, err := n.Service.Entry(n.ID)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		return printers.JSON(out, e)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.Entry(e)
	return nil
}
