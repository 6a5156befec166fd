// Package testutil holds fakes shared by package tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"admission-backend/src/store"

	"github.com/stretchr/testify/mock"
)

// FakeGenerator records every prompt and answers with Response or Err.
// OnGenerate, when set, runs during each call before the answer is returned.
type FakeGenerator struct {
	mu         sync.Mutex
	Response   string
	Err        error
	Prompts    []string
	OnGenerate func()
}

func (g *FakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	if g.OnGenerate != nil {
		g.OnGenerate()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

// Calls returns how many prompts were generated.
func (g *FakeGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Prompts)
}

// LastPrompt returns the most recent prompt or "".
func (g *FakeGenerator) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Prompts) == 0 {
		return ""
	}
	return g.Prompts[len(g.Prompts)-1]
}

var ErrStoreDown = errors.New("store unreachable")

// FailingStore wraps a store and fails reads and/or writes on demand.
type FailingStore struct {
	store.DocumentStore
	FailReads  bool
	FailWrites bool
}

func (s *FailingStore) GetByIDs(ctx context.Context, name string, ids []string) ([]store.Record, error) {
	if s.FailReads {
		return nil, ErrStoreDown
	}
	return s.DocumentStore.GetByIDs(ctx, name, ids)
}

func (s *FailingStore) GetByFilter(ctx context.Context, name string, filter store.Filter) ([]store.Record, error) {
	if s.FailReads {
		return nil, ErrStoreDown
	}
	return s.DocumentStore.GetByFilter(ctx, name, filter)
}

func (s *FailingStore) GetAll(ctx context.Context, name string) ([]store.Record, error) {
	return s.GetByFilter(ctx, name, nil)
}

func (s *FailingStore) Upsert(ctx context.Context, name string, ids []string, metadatas []map[string]interface{}, documents []string) error {
	if s.FailWrites {
		return ErrStoreDown
	}
	return s.DocumentStore.Upsert(ctx, name, ids, metadatas, documents)
}

func (s *FailingStore) Ping(ctx context.Context) error {
	if s.FailReads {
		return ErrStoreDown
	}
	return s.DocumentStore.Ping(ctx)
}

// MockMailer is a testify mock of mailer.Sender.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
