package repo

import (
	"context"
	"sync"
	"time"

	"github.com/atriumstudio/atrium/internal/infra/localstore"
	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/google/uuid"
)

// localProjectRepo is the demo backing policy: the whole project list lives in
// one file slot, read in full and rewritten in full on every mutation. It is
// single-process-authoritative and keeps no view counters.
type localProjectRepo struct {
	mu   sync.Mutex
	slot *localstore.Slot
}

func NewLocalProjectRepo(slot *localstore.Slot) ProjectRepo {
	return &localProjectRepo{slot: slot}
}

func (r *localProjectRepo) load() ([]model.Project, error) {
	var items []model.Project
	if err := r.slot.Read(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *localProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *localProjectRepo) ListByCategory(ctx context.Context, category string) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Project, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localProjectRepo) Get(ctx context.Context, id string) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			p := items[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localProjectRepo) Create(ctx context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Published = true
	p.Views = 0
	p.CreatedAt = now
	p.UpdatedAt = now

	return r.slot.Write(append(items, *p))
}

func (r *localProjectRepo) Update(ctx context.Context, id string, p *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		updated := *p
		updated.ID = id
		updated.Published = items[i].Published
		updated.Views = items[i].Views
		updated.CreatedAt = items[i].CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		items[i] = updated
		if err := r.slot.Write(items); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete is idempotent here: removing an id that is already gone rewrites the
// same list and reports success.
func (r *localProjectRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.slot.Write(kept)
}

// IncrementViews is a no-op: the demo policy does not track views.
func (r *localProjectRepo) IncrementViews(ctx context.Context, id string) error {
	return nil
}

func (r *localProjectRepo) Stats(ctx context.Context) (*ProjectStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}

	stats := &ProjectStats{TotalProjects: int64(len(items))}
	var top *model.Project
	for i := range items {
		p := &items[i]
		if p.Published {
			stats.PublishedProjects++
		}
		stats.TotalViews += p.Views
		// First encountered wins on ties.
		if top == nil || p.Views > top.Views {
			top = p
		}
	}
	if top != nil {
		stats.MostViewedProject = top.Title
	}
	return stats, nil
}
