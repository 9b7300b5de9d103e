package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
)

// PinLength is the number of digits in a security PIN.
const PinLength = 4

var ErrInvalidPin = errors.New("profile: pin must be exactly 4 digits")

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return ThemeLight, nil
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light, dark or system)", s)
	}
}

type Profile struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Bio         string          `json:"bio,omitempty"`
	Location    string          `json:"location,omitempty"`
	Theme       Theme           `json:"theme"`
	JoinedAt    entry.Timestamp `json:"joinedAt"`
	SecurityPin string          `json:"securityPin,omitempty"`
}

// HasPin reports whether launching the journal requires unlocking.
func (p Profile) HasPin() bool {
	return p.SecurityPin != ""
}

// Public returns a copy safe to show outside the owner's terminal.
func (p Profile) Public() Profile {
	p.SecurityPin = ""
	return p
}

// ValidatePin accepts an empty PIN (no lock) or exactly four ASCII digits.
func ValidatePin(pin string) error {
	if pin == "" {
		return nil
	}
	if len(pin) != PinLength {
		return ErrInvalidPin
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPin
		}
	}
	return nil
}

// Patch carries optional edits; nil fields are left alone.
type Patch struct {
	Name     *string
	Email    *string
	Bio      *string
	Location *string
	Theme    *Theme
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Bio == nil && p.Location == nil && p.Theme == nil
}

// Merge applies the patch. JoinedAt and SecurityPin are never touched here.
func (p Profile) Merge(patch Patch) Profile {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		p.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Location != nil {
		p.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	return p
}
