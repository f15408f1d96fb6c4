package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atriumstudio/atrium/internal/infra/localstore"
	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalProjects(t *testing.T) ProjectRepo {
	t.Helper()
	slot := localstore.NewSlot(filepath.Join(t.TempDir(), "projects.json"))
	return NewLocalProjectRepo(slot)
}

func localDraft(title, category string) *model.Project {
	return &model.Project{
		Title:    title,
		Category: category,
		Image:    "https://example.com/img.jpg",
	}
}

func TestLocalProjectRepo_CreateAssignsIdentity(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	p := localDraft("Hillside Residence", model.CategoryResidential)
	require.NoError(t, r.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Published)
	assert.Zero(t, p.Views)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hillside Residence", got.Title)
}

func TestLocalProjectRepo_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	ctx := context.Background()

	first := NewLocalProjectRepo(localstore.NewSlot(path))
	p := localDraft("Persisted", model.CategoryCommercial)
	require.NoError(t, first.Create(ctx, p))

	// A fresh repo over the same slot sees the same data.
	second := NewLocalProjectRepo(localstore.NewSlot(path))
	items, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ID)
}

func TestLocalProjectRepo_ListByCategory(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, localDraft("a", model.CategoryResidential)))
	require.NoError(t, r.Create(ctx, localDraft("b", model.CategoryCommercial)))
	require.NoError(t, r.Create(ctx, localDraft("c", model.CategoryResidential)))

	items, err := r.ListByCategory(ctx, model.CategoryResidential)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLocalProjectRepo_UpdatePreservesStoreManagedFields(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	p := localDraft("Before", model.CategoryResidential)
	require.NoError(t, r.Create(ctx, p))

	replacement := localDraft("After", model.CategoryCommercial)
	replacement.Views = 999 // must not leak through
	updated, err := r.Update(ctx, p.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.Zero(t, updated.Views)
	assert.True(t, updated.Published)
}

func TestLocalProjectRepo_UpdateMissing(t *testing.T) {
	r := newLocalProjects(t)
	_, err := r.Update(context.Background(), "nope", localDraft("x", model.CategoryResidential))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalProjectRepo_DeleteIsIdempotent(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	p := localDraft("Doomed", model.CategoryResidential)
	require.NoError(t, r.Create(ctx, p))

	assert.NoError(t, r.Delete(ctx, p.ID))
	// Removing an id that is already gone still succeeds.
	assert.NoError(t, r.Delete(ctx, p.ID))

	_, err := r.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalProjectRepo_IncrementViewsIsNoop(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	p := localDraft("Static", model.CategoryResidential)
	require.NoError(t, r.Create(ctx, p))
	require.NoError(t, r.IncrementViews(ctx, p.ID))

	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Views)
}

func TestLocalProjectRepo_Stats(t *testing.T) {
	r := newLocalProjects(t)
	ctx := context.Background()

	empty, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalProjects)
	assert.Empty(t, empty.MostViewedProject)

	require.NoError(t, r.Create(ctx, localDraft("first", model.CategoryResidential)))
	require.NoError(t, r.Create(ctx, localDraft("second", model.CategoryCommercial)))

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProjects)
	assert.Equal(t, int64(2), stats.PublishedProjects)
	assert.Zero(t, stats.TotalViews)
	// All counters tie at zero; the first encountered wins.
	assert.Equal(t, "first", stats.MostViewedProject)
}
