package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps every collection in process memory. It is used by the
// "memory" backend and by tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	name string

	mu      sync.RWMutex
	records map[string]Record
	seq     map[string]uint64 // first-insert order, used for stable scans
	next    uint64
}

func (c *memCollection) Name() string { return c.name }

func (c *memCollection) Count(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.records)), nil
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (s *MemoryStore) collection(name string) (*memCollection, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.RLock()
	c, ok := s.collections[name]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.collections[name]; ok {
		return c, nil
	}
	c = &memCollection{
		name:    name,
		records: make(map[string]Record),
		seq:     make(map[string]uint64),
	}
	s.collections[name] = c
	return c, nil
}

func (s *MemoryStore) Collection(ctx context.Context, name string) (Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.collection(name)
}

func (s *MemoryStore) Upsert(ctx context.Context, name string, ids []string, metadatas []map[string]interface{}, documents []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkUpsertArgs(name, ids, metadatas, documents); err != nil {
		return err
	}
	c, err := s.collection(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, id := range ids {
		rec := Record{ID: id, Metadata: copyMap(metadatas[i])}
		if documents != nil {
			rec.Document = documents[i]
		}
		if _, exists := c.records[id]; !exists {
			c.next++
			c.seq[id] = c.next
		}
		c.records[id] = rec
	}
	return nil
}

func (s *MemoryStore) GetByIDs(ctx context.Context, name string, ids []string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if rec, ok := c.records[id]; ok {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByFilter(ctx context.Context, name string, filter Filter) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, 0, len(c.records))
	for _, rec := range c.records {
		if Matches(rec.Metadata, filter) {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return c.seq[out[i].ID] < c.seq[out[j].ID]
	})
	return out, nil
}

func (s *MemoryStore) GetAll(ctx context.Context, name string) ([]Record, error) {
	return s.GetByFilter(ctx, name, nil)
}

func (s *MemoryStore) Delete(ctx context.Context, name string, ids []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := s.collection(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.records, id)
		delete(c.seq, id)
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func cloneRecord(rec Record) Record {
	return Record{ID: rec.ID, Metadata: copyMap(rec.Metadata), Document: rec.Document}
}

// copyMap deep-copies nested maps and slices so stored records cannot be
// mutated through a returned or passed-in reference.
func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return copyMap(t)
	case []interface{}:
		cp := make([]interface{}, len(t))
		for i, item := range t {
			cp[i] = copyValue(item)
		}
		return cp
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
