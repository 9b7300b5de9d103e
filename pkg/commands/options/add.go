package options

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

// EntryOptions holds the editor fields for add and edit.
type EntryOptions struct {
	Title    string
	Content  string
	Mood     mood.Mood
	Tags     []string
	Images   []string
	Location string
	OnString string

	Summarize   bool
	SuggestTags bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		`Entry title. Blank titles are saved as "Untitled Entry".`)
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		`Entry body. Use "-" to read it from stdin.`)
	cmd.Flags().VarP(&MoodValue{Mood: &o.Mood}, "mood", "m",
		"Mood of the entry, one of: "+MoodUsage()+".")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag to attach; repeat or comma-separate for more.")
	cmd.Flags().StringArrayVar(&o.Images, "image", nil,
		fmt.Sprintf("Image file to embed; up to %d.", entry.MaxImages))
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Where the entry was written.")
	cmd.Flags().BoolVar(&o.Summarize, "summarize", false,
		"Ask the assistant for a one-sentence summary before saving.")
	cmd.Flags().BoolVar(&o.SuggestTags, "suggest-tags", false,
		"Merge assistant tag suggestions before saving.")

	_ = cmd.RegisterFlagCompletionFunc("mood", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return MoodCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
}

// AddOnArg registers --on, used to backfill the date of a new entry.
func AddOnArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date of the entry, example: --on="2024-02-28" or --on=yesterday.`)
}

// Changed reports whether any editor flag was given on cmd.
func (o *EntryOptions) Changed(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "content", "mood", "tag", "image", "location"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// ReadContent resolves "-" to the whole of in.
func (o *EntryOptions) ReadContent(in io.Reader) error {
	if o.Content != "-" {
		return nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading content: %w", err)
	}
	o.Content = strings.TrimRight(string(b), "\n")
	return nil
}

// ReadImages loads the --image files as data URLs.
func (o *EntryOptions) ReadImages() ([]string, error) {
	if len(o.Images) > entry.MaxImages {
		return nil, fmt.Errorf("at most %d images per entry", entry.MaxImages)
	}
	out := make([]string, 0, len(o.Images))
	for _, path := range o.Images {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		ct := http.DetectContentType(b)
		if !strings.HasPrefix(ct, "image/") {
			return nil, fmt.Errorf("%s is not an image (%s)", path, ct)
		}
		out = append(out, entry.DataURL(ct, b))
	}
	return out, nil
}

// GetOn parses --on relative to now.
func (o *EntryOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := parseDay(o.OnString, now)
	if err != nil {
		return nil, err
	}
	// Keep the time of day so entries backfilled together still sort.
	h, m, s := now.Clock()
	t = time.Date(t.Year(), t.Month(), t.Day(), h, m, s, 0, t.Location())
	return &t, nil
}

// Draft builds a new-entry draft from the flags.
func (o *EntryOptions) Draft(now time.Time) (entry.Draft, error) {
	images, err := o.ReadImages()
	if err != nil {
		return entry.Draft{}, err
	}
	on, err := o.GetOn(now)
	if err != nil {
		return entry.Draft{}, err
	}
	return entry.Draft{
		Title:    o.Title,
		Content:  o.Content,
		Mood:     o.Mood,
		Tags:     o.Tags,
		Images:   images,
		Location: o.Location,
		Date:     on,
	}, nil
}

// Apply overlays the flags that were given on cmd onto d. Images given on
// the command line replace the existing ones.
func (o *EntryOptions) Apply(cmd *cobra.Command, d *entry.Draft) error {
	f := cmd.Flags()
	if f.Changed("title") {
		d.Title = o.Title
	}
	if f.Changed("content") {
		d.Content = o.Content
	}
	if f.Changed("mood") {
		d.Mood = o.Mood
	}
	if f.Changed("tag") {
		d.Tags = o.Tags
	}
	if f.Changed("location") {
		d.Location = o.Location
	}
	if f.Changed("image") {
		images, err := o.ReadImages()
		if err != nil {
			return err
		}
		d.Images = images
	}
	return nil
}
