package repo

import (
	"context"
	"sync"
	"time"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/google/uuid"
)

// localContactRepo keeps demo-mode submissions in memory for the lifetime of
// the process; the demo variant never persisted inquiries anywhere durable.
type localContactRepo struct {
	mu    sync.Mutex
	items []model.ContactSubmission
}

func NewLocalContactRepo() ContactRepo {
	return &localContactRepo{}
}

func (r *localContactRepo) Create(ctx context.Context, s *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	if s.Status == "" {
		s.Status = model.StatusNew
	}
	r.items = append(r.items, *s)
	return nil
}

func (r *localContactRepo) List(ctx context.Context) ([]model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first: reverse of insertion order.
	out := make([]model.ContactSubmission, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func (r *localContactRepo) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localContactRepo) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localContactRepo) SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].HighPriority = high
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localContactRepo) Stats(ctx context.Context) (*ContactStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &ContactStats{TotalSubmissions: int64(len(r.items))}
	for i := range r.items {
		switch r.items[i].Status {
		case model.StatusNew:
			stats.NewSubmissions++
		case model.StatusCompleted:
			stats.CompletedSubmissions++
		}
		if r.items[i].HighPriority {
			stats.HighPrioritySubmissions++
		}
	}
	return stats, nil
}
