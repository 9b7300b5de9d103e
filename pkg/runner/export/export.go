// Package export writes the journal, or a range of it, to a file.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	formats "github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/export"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

// Stdout as Path writes the document to Out instead of a file.
const Stdout = "-"

type Export struct {
	Service *app.Service
	Format  formats.Formatter
	Range   formats.Range
	// Path is the output file. Empty means Journal_<name>_<date>.<ext> in
	// Dir.
	Path string
	Dir  string
	Now  func() time.Time
	Out  io.Writer

	// Written is the file created by Do, if any.
	Written string
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no journal")
	}
	if n.Format == nil {
		n.Format = formats.PDF{}
	}
	if n.Now == nil {
		n.Now = time.Now
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	owner, err := n.Service.Profile()
	if err != nil {
		return err
	}
	if _, err := n.Service.ExportEntries(n.Range); err != nil {
		if errors.Is(err, app.ErrNothingToExport) {
			pp.Warn(formats.EmptyMessage)
			return nil
		}
		return err
	}

	if n.Path == Stdout {
		_, err := n.Service.Export(ctx, out, n.Format, n.Range)
		return err
	}

	path := n.Path
	if path == "" {
		path = filepath.Join(n.Dir, formats.FileName(owner, n.Format.Ext(), n.Now()))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	count, err := n.Service.Export(ctx, f, n.Format, n.Range)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	n.Written = path
	slog.Info("export: wrote document", slog.String("path", path), slog.String("format", n.Format.Name()), slog.Int("entries", count))

	noun := "memories"
	if count == 1 {
		noun = "memory"
	}
	pp.Notice("Exported %d %s to %s", count, noun, path)
	return nil
}

// Describe names the selection for confirmation prompts.
func Describe(r formats.Range) string {
	if !r.Custom() {
		return "all entries"
	}
	return fmt.Sprintf("%s to %s", r.From.Format("Jan 2, 2006"), r.To.Format("Jan 2, 2006"))
}
