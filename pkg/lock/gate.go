// Package lock holds the PIN state machines: the launch gate and the PIN
// change flow. They carry no timers; callers schedule ClearDelay themselves.
package lock

import (
	"errors"
	"strings"
	"time"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

// ClearDelay is how long a rejected PIN stays visible before the buffer is
// cleared.
const ClearDelay = 200 * time.Millisecond

var (
	ErrIncorrectPin = errors.New("incorrect PIN")
	ErrPinMismatch  = errors.New("PINs do not match")
)

type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Outcome reports what a key press did.
type Outcome int

const (
	// Pending means more digits are needed.
	Pending Outcome = iota
	// Accepted means the buffer completed and matched.
	Accepted
	// Rejected means the buffer completed and did not match.
	Rejected
	// Ignored means the input had no effect.
	Ignored
)

// Gate guards the session on launch. Once unlocked it stays unlocked.
type Gate struct {
	pin    string
	state  State
	buffer string
}

// NewGate starts locked when pin is set and unlocked otherwise.
func NewGate(pin string) *Gate {
	g := &Gate{pin: pin, state: Locked}
	if pin == "" {
		g.state = Unlocked
	}
	return g
}

func (g *Gate) State() State   { return g.state }
func (g *Gate) Buffer() string { return g.buffer }

// Len is the number of digits entered so far.
func (g *Gate) Len() int { return len(g.buffer) }

// Rejected reports whether a full, wrong PIN is waiting to be cleared.
func (g *Gate) Rejected() bool {
	return g.state == Locked && len(g.buffer) == profile.PinLength
}

// Press appends one digit. Presses while unlocked, while a rejected PIN is
// still shown, or of non-digits are ignored.
func (g *Gate) Press(digit rune) Outcome {
	if g.state == Unlocked || g.Rejected() || digit < '0' || digit > '9' {
		return Ignored
	}
	g.buffer += string(digit)
	if len(g.buffer) < profile.PinLength {
		return Pending
	}
	if g.buffer == g.pin {
		g.state = Unlocked
		g.buffer = ""
		return Accepted
	}
	return Rejected
}

// Enter presses each digit of value in turn, dropping anything else, and
// returns the last outcome.
func (g *Gate) Enter(value string) Outcome {
	out := Ignored
	for _, r := range value {
		if o := g.Press(r); o != Ignored {
			out = o
		}
		if out == Accepted || out == Rejected {
			break
		}
	}
	return out
}

// Unlock checks a whole PIN typed outside the keypad, such as a flag or
// environment value. Anything other than exactly the stored digits fails
// and leaves the gate locked with an empty buffer.
func (g *Gate) Unlock(pin string) error {
	if g.state == Unlocked {
		return nil
	}
	g.buffer = ""
	if profile.ValidatePin(pin) != nil || len(pin) != profile.PinLength {
		return ErrIncorrectPin
	}
	if g.Enter(pin) != Accepted {
		g.buffer = ""
		return ErrIncorrectPin
	}
	return nil
}

// Backspace drops the last digit unless a rejected PIN is pending.
func (g *Gate) Backspace() {
	if g.state == Unlocked || g.Rejected() || g.buffer == "" {
		return
	}
	g.buffer = g.buffer[:len(g.buffer)-1]
}

// Clear empties the buffer after a rejection.
func (g *Gate) Clear() {
	g.buffer = ""
}

// Masked renders the buffer as filled and empty dots.
func (g *Gate) Masked() string {
	return Mask(len(g.buffer))
}

func Mask(n int) string {
	n = min(max(n, 0), profile.PinLength)
	return strings.Repeat("●", n) + strings.Repeat("○", profile.PinLength-n)
}
