package services

import (
	"context"
	"fmt"

	"admission-backend/src/apperrors"
	"admission-backend/src/models"
	"admission-backend/src/store"
)

// Repository is a typed view over one collection. Every write is validated
// before it reaches the store.
type Repository[T any] struct {
	store      store.DocumentStore
	collection string
	idOf       func(*T) string
}

// NewRepository binds T to a collection. idOf extracts the record id.
func NewRepository[T any](s store.DocumentStore, collection string, idOf func(*T) string) *Repository[T] {
	return &Repository[T]{store: s, collection: collection, idOf: idOf}
}

// Collection returns the collection name.
func (r *Repository[T]) Collection() string {
	return r.collection
}

// Save validates and upserts items in one batch.
func (r *Repository[T]) Save(ctx context.Context, items ...*T) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	metas := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if err := Validate(item); err != nil {
			return err
		}
		meta, err := models.ToMetadata(item)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		ids = append(ids, r.idOf(item))
		metas = append(metas, meta)
	}
	if err := r.store.Upsert(ctx, r.collection, ids, metas, ids); err != nil {
		return apperrors.Upstream(err, fmt.Sprintf("failed to write %s", r.collection))
	}
	return nil
}

// Get returns the record with id or a NotFound error.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	recs, err := r.store.GetByIDs(ctx, r.collection, []string{id})
	if err != nil {
		return nil, apperrors.Upstream(err, fmt.Sprintf("failed to read %s", r.collection))
	}
	if len(recs) == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("%s %s not found", r.collection, id))
	}
	return r.decode(recs[0])
}

// Exists reports whether id is stored.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	recs, err := r.store.GetByIDs(ctx, r.collection, []string{id})
	if err != nil {
		return false, apperrors.Upstream(err, fmt.Sprintf("failed to read %s", r.collection))
	}
	return len(recs) > 0, nil
}

// Find returns every record matching filter, in store order.
func (r *Repository[T]) Find(ctx context.Context, filter store.Filter) ([]T, error) {
	recs, err := r.store.GetByFilter(ctx, r.collection, filter)
	if err != nil {
		return nil, apperrors.Upstream(err, fmt.Sprintf("failed to query %s", r.collection))
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		item, err := r.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// All is Find with no filter.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	return r.Find(ctx, nil)
}

// Count returns the number of records matching filter.
func (r *Repository[T]) Count(ctx context.Context, filter store.Filter) (int, error) {
	recs, err := r.store.GetByFilter(ctx, r.collection, filter)
	if err != nil {
		return 0, apperrors.Upstream(err, fmt.Sprintf("failed to count %s", r.collection))
	}
	return len(recs), nil
}

func (r *Repository[T]) decode(rec store.Record) (*T, error) {
	var item T
	if err := models.FromMetadata(rec.Metadata, &item); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("malformed %s record %s: %v", r.collection, rec.ID, err))
	}
	return &item, nil
}

// Repositories groups the typed repositories over every collection.
type Repositories struct {
	Students     *Repository[models.Student]
	Applications *Repository[models.Application]
	Loans        *Repository[models.LoanRequest]
	FeeSlips     *Repository[models.FeeSlip]
	Logs         *Repository[models.CommunicationLog]
	Agents       *Repository[models.Agent]
	Budgets      *Repository[models.UniversityBudget]
	Status       *Repository[models.AdmissionProcessStatus]
}

// NewRepositories builds every repository over s.
func NewRepositories(s store.DocumentStore) *Repositories {
	return &Repositories{
		Students:     NewRepository(s, store.Students, func(v *models.Student) string { return v.ID }),
		Applications: NewRepository(s, store.Applications, func(v *models.Application) string { return v.ID }),
		Loans:        NewRepository(s, store.LoanRequests, func(v *models.LoanRequest) string { return v.ID }),
		FeeSlips:     NewRepository(s, store.FeeSlips, func(v *models.FeeSlip) string { return v.ID }),
		Logs:         NewRepository(s, store.CommunicationLogs, func(v *models.CommunicationLog) string { return v.ID }),
		Agents:       NewRepository(s, store.Agents, func(v *models.Agent) string { return v.ID }),
		Budgets:      NewRepository(s, store.UniversityBudget, func(v *models.UniversityBudget) string { return v.ID }),
		Status: NewRepository(s, store.AdmissionStatus, func(*models.AdmissionProcessStatus) string {
			return models.AdmissionStatusID
		}),
	}
}
