package combat

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smp46/slaythecli/internal/card"
)

func TestMemoryRepo_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	s, err := NewSession(Options{
		MaxHP:    50,
		Deck:     []card.Card{{Name: "Defend", Cost: 1, Block: 5}},
		Monsters: []MonsterSpec{{Kind: "louse", MaxHP: 10}},
		RNG:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	_, ok, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, s))

	got, ok, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, s, got)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{s.ID}, ids)

	deleted, err := repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
