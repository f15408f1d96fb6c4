package repo

import (
	"context"
	"testing"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSubmission(t *testing.T, r ContactRepo, first string) *model.ContactSubmission {
	t.Helper()
	s := &model.ContactSubmission{
		FirstName:   first,
		LastName:    "Tester",
		Email:       first + "@example.com",
		ProjectType: model.ProjectTypeResidential,
		Message:     "hello",
	}
	require.NoError(t, r.Create(context.Background(), s))
	return s
}

func TestLocalContactRepo_ListNewestFirst(t *testing.T) {
	r := NewLocalContactRepo()
	ctx := context.Background()

	seedSubmission(t, r, "first")
	seedSubmission(t, r, "second")
	seedSubmission(t, r, "third")

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].FirstName)
	assert.Equal(t, "first", items[2].FirstName)
}

func TestLocalContactRepo_CreateDefaultsToNew(t *testing.T) {
	r := NewLocalContactRepo()
	s := seedSubmission(t, r, "maya")

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, model.StatusNew, s.Status)
	assert.False(t, s.HighPriority)
}

func TestLocalContactRepo_UpdateStatus(t *testing.T) {
	r := NewLocalContactRepo()
	ctx := context.Background()
	s := seedSubmission(t, r, "maya")

	out, err := r.UpdateStatus(ctx, s.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, out.Status)

	_, err = r.UpdateStatus(ctx, "missing", model.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalContactRepo_SetPriorityIndependentOfStatus(t *testing.T) {
	r := NewLocalContactRepo()
	ctx := context.Background()
	s := seedSubmission(t, r, "maya")

	out, err := r.SetPriority(ctx, s.ID, true)
	require.NoError(t, err)
	assert.True(t, out.HighPriority)
	assert.Equal(t, model.StatusNew, out.Status)

	out, err = r.SetPriority(ctx, s.ID, false)
	require.NoError(t, err)
	assert.False(t, out.HighPriority)
}

func TestLocalContactRepo_Stats(t *testing.T) {
	r := NewLocalContactRepo()
	ctx := context.Background()

	a := seedSubmission(t, r, "a")
	seedSubmission(t, r, "b")
	c := seedSubmission(t, r, "c")

	_, err := r.UpdateStatus(ctx, a.ID, model.StatusCompleted)
	require.NoError(t, err)
	_, err = r.SetPriority(ctx, c.ID, true)
	require.NoError(t, err)

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalSubmissions)
	assert.Equal(t, int64(2), stats.NewSubmissions)
	assert.Equal(t, int64(1), stats.CompletedSubmissions)
	assert.Equal(t, int64(1), stats.HighPrioritySubmissions)
}
