package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutStored = "2006-01-02T15:04:05.000Z07:00"
	layoutISO    = "2006-01-02"
)

// ParseTime accepts RFC3339 timestamps (with or without fractional seconds)
// and bare dates, which resolve to local midnight.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISO, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", v)
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) SameDay(then time.Time) bool {
	ly, lm, ld := t.Local().Date()
	ry, rm, rd := then.Local().Date()
	return ly == ry && lm == rm && ld == rd
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

// String renders the stored form: UTC with millisecond precision.
func (t Timestamp) String() string {
	return t.UTC().Format(layoutStored)
}

func FormatTime(v time.Time) string {
	return Timestamp{Time: v}.String()
}
