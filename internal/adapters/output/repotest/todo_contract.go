// Package repotest holds the behaviour every repository backend must share.
// Backends call RunTodoRepositoryContract from their own tests with a factory
// that returns an empty repository whose id sequence starts at 1.
package repotest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TodoRepositoryFactory returns an empty repository for one subtest
type TodoRepositoryFactory func(t *testing.T) output.TodoRepository

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// RequireNotFound asserts err is a NotFoundError for id
func RequireNotFound(t *testing.T, err error, id int) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "expected ErrNotFound, got %v", err)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf), "expected *domain.NotFoundError, got %T", err)
	assert.Equal(t, id, nf.ID)
}

// RunTodoRepositoryContract runs the shared todo repository behaviour against newRepo
func RunTodoRepositoryContract(t *testing.T, newRepo TodoRepositoryFactory) {
	ctx := context.Background()

	t.Run("CRUDScenario", func(t *testing.T) {
		repo := newRepo(t)

		a, err := repo.Create(ctx, domain.CreateTodo{Text: "a"})
		require.NoError(t, err)
		assert.Equal(t, domain.Todo{ID: 1, Text: "a", Completed: false}, a)

		b, err := repo.Create(ctx, domain.CreateTodo{Text: "b"})
		require.NoError(t, err)
		assert.Equal(t, 2, b.ID)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []domain.Todo{a, b}, all)

		updated, err := repo.Update(ctx, 1, domain.UpdateTodo{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, domain.Todo{ID: 1, Text: "a", Completed: true}, updated)

		require.NoError(t, repo.Delete(ctx, 2))
		RequireNotFound(t, repo.Delete(ctx, 2), 2)
	})

	t.Run("CreateThenFind", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "todo text"})
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, "todo text", created.Text)
		assert.False(t, created.Completed)

		found, err := repo.Find(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("MissingID", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Find(ctx, 42)
		RequireNotFound(t, err, 42)

		_, err = repo.Update(ctx, 42, domain.UpdateTodo{Text: strPtr("x")})
		RequireNotFound(t, err, 42)

		RequireNotFound(t, repo.Delete(ctx, 42), 42)
	})

	t.Run("AllEmpty", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("AllAfterCreates", func(t *testing.T) {
		repo := newRepo(t)

		const n = 5
		for i := 0; i < n; i++ {
			_, err := repo.Create(ctx, domain.CreateTodo{Text: fmt.Sprintf("todo %d", i)})
			require.NoError(t, err)
		}

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, n)
		seen := make(map[int]bool, n)
		for _, todo := range all {
			assert.False(t, seen[todo.ID], "duplicate id %d", todo.ID)
			seen[todo.ID] = true
		}
	})

	t.Run("UpdateTextKeepsCompleted", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "todo text"})
		require.NoError(t, err)
		_, err = repo.Update(ctx, created.ID, domain.UpdateTodo{Completed: boolPtr(true)})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, domain.UpdateTodo{Text: strPtr("update todo")})
		require.NoError(t, err)
		assert.Equal(t, domain.Todo{ID: created.ID, Text: "update todo", Completed: true}, updated)

		found, err := repo.Find(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, found)
	})

	t.Run("UpdateCompletedKeepsText", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "keep me"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, domain.UpdateTodo{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, "keep me", updated.Text)
		assert.True(t, updated.Completed)

		updated, err = repo.Update(ctx, created.ID, domain.UpdateTodo{Completed: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, "keep me", updated.Text)
		assert.False(t, updated.Completed)
	})

	t.Run("UpdateWithoutFields", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "unchanged"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, domain.UpdateTodo{})
		require.NoError(t, err)
		assert.Equal(t, created, updated)
	})

	t.Run("DeleteThenFind", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "short lived"})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.Find(ctx, created.ID)
		RequireNotFound(t, err, created.ID)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.CreateTodo{Text: "original"})
		require.NoError(t, err)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		all[0].Text = "mutated by caller"
		created.Completed = true

		found, err := repo.Find(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", found.Text)
		assert.False(t, found.Completed)
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		repo := newRepo(t)

		const n = 20
		ids := make([]int, n)
		var g errgroup.Group
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				todo, err := repo.Create(ctx, domain.CreateTodo{Text: fmt.Sprintf("parallel %d", i)})
				ids[i] = todo.ID
				return err
			})
		}
		require.NoError(t, g.Wait())

		seen := make(map[int]bool, n)
		for _, id := range ids {
			assert.False(t, seen[id], "id %d allocated twice", id)
			seen[id] = true
		}
		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, n)
	})
}
