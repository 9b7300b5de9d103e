package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight/gemini"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight/openai"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/journal"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/logging"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/prompt"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/tui/pinpad"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/tui/theme"
)

// Command annotations that relax what setup requires.
const (
	// annotationNoJournal skips config, logging and storage entirely.
	annotationNoJournal = "journal/no-journal"
	// annotationNoProfile opens the journal without requiring onboarding.
	annotationNoProfile = "journal/no-profile"
)

var errLocked = errors.New("journal is locked: pass --pin or set JOURNAL_PIN")

// environment carries what every command shares once setup has run.
type environment struct {
	configFile string
	pin        string

	config  store.Config
	service *app.Service
	closer  io.Closer

	loadConfig  func(file string) (store.Config, error)
	open        func(cfg store.Config) (store.Persistence, error)
	now         func() time.Time
	interactive func() bool
	unlock      func(g *lock.Gate, p profile.Profile) error
	in          io.Reader
}

func newEnvironment() *environment {
	return &environment{
		loadConfig:  store.LoadConfig,
		open:        store.Load,
		now:         time.Now,
		interactive: options.IsTerminal,
		unlock:      unlockWithPad,
		in:          os.Stdin,
	}
}

func skip(cmd *cobra.Command, annotation string) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotation]; ok {
			return true
		}
	}
	return false
}

// setup loads config, starts logging, opens the journal and, unless the
// command says otherwise, requires a profile and an unlocked PIN gate.
func (e *environment) setup(cmd *cobra.Command, _ []string) error {
	if skip(cmd, annotationNoJournal) {
		return nil
	}
	cmd.SilenceUsage = true

	cfg, err := e.loadConfig(e.configFile)
	if err != nil {
		return err
	}
	e.config = cfg
	log, closer := logging.Setup(cfg.LogFile(), cfg.LogLevel())
	e.closer = closer

	p, err := e.open(cfg)
	if err != nil {
		return err
	}
	sess, err := journal.Open(cmd.Context(), p)
	if err != nil {
		return err
	}
	e.service = &app.Service{
		Session:   sess,
		Assistant: insight.New(newDriver(cfg), cfg.AITimeout(), log),
		WeekStart: cfg.WeekStart(),
		Now:       e.now,
	}
	log.Debug("journal opened",
		slog.String("command", cmd.CommandPath()),
		slog.String("path", cfg.BasePath()),
		slog.Int("entries", sess.Entries.Len()),
		slog.String("assistant", e.service.Assistant.DriverName()),
	)

	if skip(cmd, annotationNoProfile) {
		return nil
	}
	if !sess.Onboarded() {
		return fmt.Errorf("%w: run `journal init` to create your profile", app.ErrNotOnboarded)
	}
	return e.unlockGate()
}

func (e *environment) unlockGate() error {
	g := e.service.Gate()
	if g.State() == lock.Unlocked {
		return nil
	}
	pin := e.pin
	if pin == "" {
		pin = os.Getenv("JOURNAL_PIN")
	}
	if pin != "" {
		return g.Unlock(pin)
	}
	if !e.interactive() {
		return errLocked
	}
	p, err := e.service.Profile()
	if err != nil {
		return err
	}
	return e.unlock(g, p)
}

func (e *environment) close() {
	if e.closer != nil {
		_ = e.closer.Close()
		e.closer = nil
	}
}

func (e *environment) theme() theme.Theme {
	if e.service == nil {
		return theme.Default()
	}
	p, err := e.service.Profile()
	if err != nil {
		return theme.Default()
	}
	return theme.For(p.Theme, termenv.HasDarkBackground())
}

func unlockWithPad(g *lock.Gate, p profile.Profile) error {
	return pinpad.Run(pinpad.NewUnlock(g, p.Name, theme.For(p.Theme, termenv.HasDarkBackground())))
}

// newDriver picks the generative backend named in config. Without an API
// key the drivers report insight.ErrUnavailable and every call falls back.
func newDriver(cfg store.Config) insight.Driver {
	switch p := cfg.AIProvider(); p {
	case "", gemini.NAME:
		return gemini.New(cfg.AIKey(), cfg.AIModel())
	case openai.NAME:
		return openai.New(cfg.AIKey(), cfg.AIBaseURL(), cfg.AIModel())
	case "none", "offline":
		return insight.Offline{}
	default:
		slog.Warn("unknown ai.provider, assistant disabled", slog.String("provider", p))
		return insight.Offline{}
	}
}

func (e *environment) prompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.Prompter{In: e.in, Out: cmd.OutOrStdout()}
}

// confirm returns true when yes is set, otherwise asks on the terminal.
// Without a terminal the question can not be asked and the answer is no.
func (e *environment) confirm(cmd *cobra.Command, yes bool, label string) (bool, error) {
	if yes {
		return true, nil
	}
	if !e.interactive() {
		return false, errors.New("refusing without confirmation: pass --yes")
	}
	return e.prompter(cmd).Confirm(label)
}
