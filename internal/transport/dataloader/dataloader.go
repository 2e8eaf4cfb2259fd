// Package dataloader provides per-request loaders that batch the user and
// column lookups needed to render tasks into single SQL calls. Loaders call
// repositories directly, bypassing the service layer; they only read public
// user summaries and board columns, which every authenticated caller may see.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type columnRepo interface {
	List(ctx context.Context) ([]domain.Column, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	User   userRepo
	Column columnRepo
}

// Loaders is created per request via NewLoaders.
type Loaders struct {
	UserByID   *dataloader.Loader[uuid.UUID, *domain.UserSummary]
	ColumnByID *dataloader.Loader[uuid.UUID, *domain.Column]
}

// NewLoaders creates loaders backed by repos. Results are cached for the
// lifetime of the returned value, so it must not outlive a request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:   newLoader(newUsersBatchFn(repos.User)),
		ColumnByID: newLoader(newColumnsBatchFn(repos.Column)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
