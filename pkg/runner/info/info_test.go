package info

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/journal"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store/storetest"
)

func service(t *testing.T, p *profile.Profile) *app.Service {
	t.Helper()
	color.NoColor = true
	sess, err := journal.Open(context.Background(), storetest.NewMemory().Seed(p))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return &app.Service{Session: sess}
}

func TestInfoPrintsProfile(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{Service: service(t, &profile.Profile{Name: "Ana", Bio: "writer", SecurityPin: "1234", Theme: profile.ThemeDark}), Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Ana", "writer", "dark", "●●●●"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1234") {
		t.Fatalf("PIN leaked:\n%s", out)
	}
}

func TestInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{Service: service(t, &profile.Profile{Name: "Ana", SecurityPin: "1234"}), JSON: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		Profile  profile.Profile `json:"profile"`
		HasPin   bool            `json:"hasPin"`
		Memories int             `json:"memories"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Profile.Name != "Ana" || got.Profile.SecurityPin != "" || !got.HasPin || got.Memories != 0 {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestInfoNotOnboarded(t *testing.T) {
	n := &Info{Service: service(t, nil), Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a profile")
	}
}
