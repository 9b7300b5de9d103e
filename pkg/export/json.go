package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

// JSON writes a machine-readable archive in the stored entry format.
type JSON struct{}

func (JSON) Name() string { return "json" }
func (JSON) Ext() string  { return "json" }

type archive struct {
	Profile    profile.Profile `json:"profile"`
	ExportedAt entry.Timestamp `json:"exportedAt"`
	Count      int             `json:"count"`
	Entries    []*entry.Entry  `json:"entries"`
}

func (JSON) Format(w io.Writer, owner profile.Profile, entries []*entry.Entry, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(archive{
		Profile:    owner.Public(),
		ExportedAt: entry.NewTimestamp(now),
		Count:      len(entries),
		Entries:    Chronological(entries),
	})
	if err != nil {
		return fmt.Errorf("export: writing json: %w", err)
	}
	return nil
}
