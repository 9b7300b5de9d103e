package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

const (
	// KeyProfile holds the serialized profile. Its absence means the journal
	// has not been onboarded.
	KeyProfile = "journal_user"
	// KeyEntries holds the full entry collection in storage order.
	KeyEntries = "journal_entries"
)

// Persistence defines the durable storage contract for the journal. Every
// Store call overwrites the whole value of its key.
type Persistence interface {
	LoadEntries(ctx context.Context) ([]*entry.Entry, error)
	StoreEntries(ctx context.Context, entries []*entry.Entry) error
	LoadProfile(ctx context.Context) (*profile.Profile, error)
	StoreProfile(ctx context.Context, p profile.Profile) error
	Reset(ctx context.Context) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig("")
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath())
}

// Open creates a Persistence rooted at basePath.
func Open(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           basePath + ".staging",
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes write the same keys; every read goes to disk.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// read returns (nil, nil) when key has never been written.
func (p *persistence) read(key string) ([]byte, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	slog.Debug("store: wrote key", "key", key, "bytes", len(data))
	return nil
}

func (p *persistence) LoadEntries(_ context.Context) ([]*entry.Entry, error) {
	val, err := p.read(KeyEntries)
	if err != nil || val == nil {
		return nil, err
	}
	var list []*entry.Entry
	if err := json.Unmarshal(val, &list); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", KeyEntries, err)
	}
	out := make([]*entry.Entry, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		if e.Tags == nil {
			e.Tags = []string{}
		}
		out = append(out, e)
	}
	return out, nil
}

func (p *persistence) StoreEntries(_ context.Context, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return p.write(KeyEntries, entries)
}

func (p *persistence) LoadProfile(_ context.Context) (*profile.Profile, error) {
	val, err := p.read(KeyProfile)
	if err != nil || val == nil {
		return nil, err
	}
	var pr profile.Profile
	if err := json.Unmarshal(val, &pr); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", KeyProfile, err)
	}
	if pr.Theme == "" {
		pr.Theme = profile.ThemeLight
	}
	return &pr, nil
}

func (p *persistence) StoreProfile(_ context.Context, pr profile.Profile) error {
	return p.write(KeyProfile, pr)
}

func (p *persistence) Reset(_ context.Context) error {
	for _, key := range []string{KeyEntries, KeyProfile} {
		if !p.d.Has(key) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

// Keys are stored flat under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
