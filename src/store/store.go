// Package store is a collection-oriented document store. Each named
// collection holds records addressed by a unique id; a record carries a flat
// attribute map (metadata) and an optional raw text blob.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Fixed collection names.
const (
	Students          = "students"
	Applications      = "applications"
	Documents         = "documents"
	CommunicationLogs = "communication_logs"
	LoanRequests      = "loan_requests"
	FeeSlips          = "fee_slips"
	Agents            = "agents"
	AdmissionStatus   = "admission_status"
	UniversityBudget  = "university_budget"
)

// CollectionNames lists every collection created at startup.
var CollectionNames = []string{
	Students,
	Applications,
	Documents,
	CommunicationLogs,
	LoanRequests,
	FeeSlips,
	Agents,
	AdmissionStatus,
	UniversityBudget,
}

var (
	ErrLengthMismatch = errors.New("ids, metadatas and documents must have equal length")
	ErrEmptyID        = errors.New("record id must not be empty")
	ErrEmptyName      = errors.New("collection name must not be empty")
)

// Record is one stored entry.
type Record struct {
	ID       string                 `json:"id"`
	Metadata map[string]interface{} `json:"metadata"`
	Document string                 `json:"document,omitempty"`
}

// Filter is a set of attribute equalities combined with logical AND.
// A nil or empty filter matches every record.
type Filter map[string]interface{}

// Collection is a handle to a named partition of the store.
type Collection interface {
	Name() string
	Count(ctx context.Context) (int64, error)
}

// DocumentStore is the contract every backend implements. Referencing a
// collection that does not exist yet creates it; it is never an error.
type DocumentStore interface {
	// Collection creates the collection if absent and returns its handle.
	// Repeated calls with the same name return the same handle.
	Collection(ctx context.Context, name string) (Collection, error)

	// Upsert writes records positionally aligned across ids, metadatas and
	// documents. documents may be nil. Existing ids are overwritten.
	Upsert(ctx context.Context, name string, ids []string, metadatas []map[string]interface{}, documents []string) error

	// GetByIDs returns the matching records in the order of ids; unknown ids
	// are skipped.
	GetByIDs(ctx context.Context, name string, ids []string) ([]Record, error)

	// GetByFilter returns every record whose metadata equals all filter pairs.
	GetByFilter(ctx context.Context, name string, filter Filter) ([]Record, error)

	// GetAll is GetByFilter with an empty filter.
	GetAll(ctx context.Context, name string) ([]Record, error)

	// Delete removes the given ids; unknown ids are ignored.
	Delete(ctx context.Context, name string, ids []string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// InitCollections creates every fixed collection.
func InitCollections(ctx context.Context, s DocumentStore) error {
	for _, name := range CollectionNames {
		if _, err := s.Collection(ctx, name); err != nil {
			return fmt.Errorf("init collection %s: %w", name, err)
		}
	}
	return nil
}

func checkUpsertArgs(name string, ids []string, metadatas []map[string]interface{}, documents []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(ids) != len(metadatas) {
		return ErrLengthMismatch
	}
	if documents != nil && len(documents) != len(ids) {
		return ErrLengthMismatch
	}
	for _, id := range ids {
		if id == "" {
			return ErrEmptyID
		}
	}
	return nil
}
