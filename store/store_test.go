package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openTest(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), ":memory:", zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTest(t)

	require.NoError(t, repo.Save(ctx, "starter", `15x "Buff card"`))
	d, err := repo.Load(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, "starter", d.Name)
	assert.Equal(t, `15x "Buff card"`, d.Body)
	assert.False(t, d.UpdatedAt.IsZero())

	require.NoError(t, repo.Save(ctx, "starter", `1x "Light elemental"`))
	d, err = repo.Load(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, `1x "Light elemental"`, d.Body, "save replaces")
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTest(t)

	for _, name := range []string{"zoo", "aggro", "midrange"} {
		require.NoError(t, repo.Save(ctx, name, "1x \"Buff card\""))
	}
	decks, err := repo.List(ctx)
	require.NoError(t, err)
	var names []string
	for _, d := range decks {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"aggro", "midrange", "zoo"}, names)

	require.NoError(t, repo.Delete(ctx, "zoo"))
	assert.ErrorIs(t, repo.Delete(ctx, "zoo"), ErrDeckNotFound)
	_, err = repo.Load(ctx, "zoo")
	assert.ErrorIs(t, err, ErrDeckNotFound)
}
