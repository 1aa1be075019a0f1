package repotest

import (
	"context"
	"errors"
	"testing"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LabelRepositoryFactory returns an empty label repository for one subtest
type LabelRepositoryFactory func(t *testing.T) output.LabelRepository

// RunLabelRepositoryContract runs the shared label repository behaviour against newRepo
func RunLabelRepositoryContract(t *testing.T, newRepo LabelRepositoryFactory) {
	ctx := context.Background()

	t.Run("CreateAllDelete", func(t *testing.T) {
		repo := newRepo(t)

		home, err := repo.Create(ctx, "home")
		require.NoError(t, err)
		assert.Equal(t, "home", home.Name)

		work, err := repo.Create(ctx, "work")
		require.NoError(t, err)
		assert.Greater(t, work.ID, home.ID)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Label{home, work}, all)

		require.NoError(t, repo.Delete(ctx, home.ID))
		all, err = repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Label{work}, all)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, "test_label")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "test_label")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicate), "expected ErrDuplicate, got %v", err)
		assert.True(t, errors.Is(err, domain.ErrUnexpected), "expected ErrUnexpected, got %v", err)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		repo := newRepo(t)

		RequireNotFound(t, repo.Delete(ctx, 99), 99)
	})
}
