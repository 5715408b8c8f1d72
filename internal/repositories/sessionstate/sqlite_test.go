package sessionstate_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate"
)

func TestNewSQLiteRequiresPath(t *testing.T) {
	_, err := sessionstate.NewSQLite(&sessionstate.SQLiteConfig{Path: "  "})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSQLiteStatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()
	psalm := &entities.Character{Name: "Psalm"}

	repo, err := sessionstate.NewSQLite(&sessionstate.SQLiteConfig{Path: path})
	require.NoError(t, err)
	state := entities.NewSessionState("")
	state.Spells.WildShapeUsed = 1
	_, err = repo.Save(ctx, sessionstate.SaveInput{Entity: psalm, State: state})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := sessionstate.NewSQLite(&sessionstate.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, sessionstate.GetInput{Entity: psalm})
	require.NoError(t, err)
	assert.Equal(t, 1, got.State.Spells.WildShapeUsed)
}
