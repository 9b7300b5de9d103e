package prompt

import (
	"testing"
)

func TestParseBool(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    bool
		wantErr bool
	}{
		"yes":   {in: "yes", want: true},
		"Y":     {in: "Y", want: true},
		"no":    {in: "no"},
		"false": {in: "false"},
		"maybe": {in: "maybe", wantErr: true},
		"empty": {in: "", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBool(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseBool(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("ParseBool(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	v := Required("name")
	if err := v("  "); err == nil {
		t.Fatalf("expected blank to be rejected")
	}
	if err := v("Ana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"", "ana@example.com"} {
		if err := Email(ok); err != nil {
			t.Fatalf("Email(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"ana", "@example.com", "ana@", "a na@example.com"} {
		if err := Email(bad); err == nil {
			t.Fatalf("Email(%q) accepted", bad)
		}
	}
}
