// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// Memory keeps the encoded values the way the disk store would, so tests see
// the same serialization round trip.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailWrites makes every Store call return this error.
	FailWrites error
	// Writes counts successful and failed Store calls.
	Writes int
}

var _ store.Persistence = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Seed stores values directly, bypassing FailWrites.
func (m *Memory) Seed(pr *profile.Profile, entries ...*entry.Entry) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pr != nil {
		b, _ := json.Marshal(pr)
		m.values[store.KeyProfile] = b
	}
	if len(entries) > 0 {
		b, _ := json.Marshal(entries)
		m.values[store.KeyEntries] = b
	}
	return m
}

// Raw returns the stored bytes for key.
func (m *Memory) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.values[key]
	return b, ok
}

func (m *Memory) LoadEntries(_ context.Context) ([]*entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.values[store.KeyEntries]
	if !ok {
		return nil, nil
	}
	var out []*entry.Entry
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Memory) StoreEntries(_ context.Context, entries []*entry.Entry) error {
	return m.put(store.KeyEntries, entries)
}

func (m *Memory) LoadProfile(_ context.Context) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.values[store.KeyProfile]
	if !ok {
		return nil, nil
	}
	var pr profile.Profile
	if err := json.Unmarshal(b, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (m *Memory) StoreProfile(_ context.Context, pr profile.Profile) error {
	return m.put(store.KeyProfile, pr)
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string][]byte)
	return nil
}

// Watch returns a channel that never fires and closes with ctx.
func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) put(key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.FailWrites != nil {
		return m.FailWrites
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.values[key] = b
	return nil
}
