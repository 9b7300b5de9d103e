package lock

import (
	"strings"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

type Step int

const (
	VerifyOld Step = iota
	EnterNew
	ConfirmNew
	Done
)

func (s Step) String() string {
	switch s {
	case VerifyOld:
		return "Enter old PIN"
	case EnterNew:
		return "Enter new PIN"
	case ConfirmNew:
		return "Confirm new PIN"
	default:
		return "PIN updated"
	}
}

// ChangeFlow walks VerifyOld -> EnterNew -> ConfirmNew -> Done. commit is
// called with the confirmed PIN; when it fails the flow stays at ConfirmNew.
// Without a current PIN there is nothing to verify and the flow starts at
// EnterNew.
type ChangeFlow struct {
	current string
	commit  func(pin string) error

	step    Step
	old     string
	next    string
	confirm string
}

func NewChangeFlow(current string, commit func(pin string) error) *ChangeFlow {
	f := &ChangeFlow{current: current, commit: commit}
	if current == "" {
		f.step = EnterNew
	}
	return f
}

func (f *ChangeFlow) Step() Step { return f.step }

// Input returns the buffer of the active step.
func (f *ChangeFlow) Input() string {
	switch f.step {
	case VerifyOld:
		return f.old
	case EnterNew:
		return f.next
	case ConfirmNew:
		return f.confirm
	default:
		return ""
	}
}

// SetInput replaces the active step's buffer, keeping at most four digits.
func (f *ChangeFlow) SetInput(v string) {
	v = digits(v)
	switch f.step {
	case VerifyOld:
		f.old = v
	case EnterNew:
		f.next = v
	case ConfirmNew:
		f.confirm = v
	}
}

// Submit acts on the active step.
func (f *ChangeFlow) Submit() (Outcome, error) {
	switch f.step {
	case VerifyOld:
		if f.old != f.current {
			f.old = ""
			return Rejected, ErrIncorrectPin
		}
		f.old = ""
		f.step = EnterNew
		return Accepted, nil
	case EnterNew:
		if len(f.next) < profile.PinLength {
			return Pending, nil
		}
		f.step = ConfirmNew
		return Accepted, nil
	case ConfirmNew:
		if f.confirm != f.next {
			f.confirm = ""
			return Rejected, ErrPinMismatch
		}
		if f.commit != nil {
			if err := f.commit(f.next); err != nil {
				return Rejected, err
			}
		}
		f.current = f.next
		f.step = Done
		return Accepted, nil
	default:
		return Ignored, nil
	}
}

// Enter sets the active buffer and submits it.
func (f *ChangeFlow) Enter(v string) (Outcome, error) {
	f.SetInput(v)
	return f.Submit()
}

func digits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' && b.Len() < profile.PinLength {
			b.WriteRune(r)
		}
	}
	return b.String()
}
