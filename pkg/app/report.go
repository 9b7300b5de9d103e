package app

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
)

// ReportSection groups the entries written in one mood.
type ReportSection struct {
	Mood    mood.Mood
	Entries []*entry.Entry
}

// ReportResult summarizes what was written between two instants.
type ReportResult struct {
	Since     time.Time
	Until     time.Time
	Sections  []ReportSection
	Total     int
	Favorites int
	Tags      map[string]int
}

// TopTags returns up to n tags ordered by use, then name.
func (r ReportResult) TopTags(n int) []string {
	tags := lo.Keys(r.Tags)
	sort.Slice(tags, func(i, j int) bool {
		if r.Tags[tags[i]] != r.Tags[tags[j]] {
			return r.Tags[tags[i]] > r.Tags[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if n < len(tags) {
		tags = tags[:n]
	}
	return tags
}

// Report groups entries dated within [since, until] by mood. Sections follow
// the mood table order and entries within a section are newest first.
func (s *Service) Report(since, until time.Time) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	sess, err := s.session()
	if err != nil {
		return ReportResult{}, err
	}

	within := query.SortByDate(query.InRange(sess.Entries.All(), &since, &until))
	result := ReportResult{
		Since: since,
		Until: until,
		Total: len(within),
		Tags:  make(map[string]int),
	}
	if len(within) == 0 {
		return result, nil
	}

	grouped := lo.GroupBy(within, func(e *entry.Entry) mood.Mood { return e.Mood })
	for _, m := range mood.All() {
		if list, ok := grouped[m]; ok {
			result.Sections = append(result.Sections, ReportSection{Mood: m, Entries: list})
		}
	}
	for _, e := range within {
		if e.IsFavorite {
			result.Favorites++
		}
		for _, t := range e.Tags {
			result.Tags[t]++
		}
	}
	return result, nil
}
