package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/serviceflow/kanban-backend/internal/domain"
)

// Unknown users resolve to nil: an assignee may have been deleted between
// reading the task and loading the user.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserSummary] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.UserSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.UserSummary, len(users))
		for i := range users {
			s := users[i].Summary()
			byID[s.ID] = &s
		}

		return mapResults(keys, byID, nilValue[*domain.UserSummary])
	}
}

// The board has a handful of columns, so one listing serves every key.
func newColumnsBatchFn(repo columnRepo) dataloader.BatchFunc[uuid.UUID, *domain.Column] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Column] {
		columns, err := repo.List(ctx)
		if err != nil {
			return errorResults[*domain.Column](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Column, len(columns))
		for i := range columns {
			byID[columns[i].ID] = &columns[i]
		}

		results := make([]*dataloader.Result[*domain.Column], len(keys))
		for i, key := range keys {
			if c, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Column]{Data: c}
			} else {
				results[i] = &dataloader.Result[*domain.Column]{Error: fmt.Errorf("column %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

// LoadUsers resolves the given ids into summaries keyed by id. Unknown ids
// are left out.
func LoadUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserSummary, error) {
	out := make(map[uuid.UUID]domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, errs := FromContext(ctx).UserByID.LoadMany(ctx, dedupe(ids))()
	for i, u := range users {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if u != nil {
			out[u.ID] = *u
		}
	}
	return out, nil
}

// LoadColumn resolves a single column.
func LoadColumn(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	return FromContext(ctx).ColumnByID.Load(ctx, id)()
}

// LoadColumns resolves the given column ids in one batch.
func LoadColumns(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Column, error) {
	out := make(map[uuid.UUID]*domain.Column, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	columns, errs := FromContext(ctx).ColumnByID.LoadMany(ctx, dedupe(ids))()
	for i, c := range columns {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if c != nil {
			out[c.ID] = c
		}
	}
	return out, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[V any]() V {
	var zero V
	return zero
}
