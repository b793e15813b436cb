package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotOfOpeningTurn(t *testing.T) {
	s := draftedState(t, testSetup())

	v := s.Snapshot()
	assert.Equal(t, "I", v.Age)
	assert.Equal(t, "Turn", v.Phase)
	assert.Equal(t, 0, v.Turn)
	assert.Nil(t, v.Victory)
	assert.Empty(t, v.TokenOffer)
	assert.Empty(t, v.BuildingOffer)
	assert.Len(t, v.BoardTokens, BoardTokenCount)

	require.NotNil(t, v.Deck)
	assert.Equal(t, 20, v.Deck.Remaining)
	assert.Len(t, v.Deck.Playable, 6)
	assert.Len(t, v.Deck.TopLine, 2)

	for p := 0; p < 2; p++ {
		city := v.Cities[p]
		assert.Equal(t, StartingCoins, city.Coins)
		assert.Len(t, city.Wonders, 4)
		assert.Len(t, city.BuildingPrices, 6)
	}

	// The snapshot must be serializable as sent to clients.
	_, err := json.Marshal(v)
	require.NoError(t, err)
}

func TestSnapshotAfterResign(t *testing.T) {
	s := draftedState(t, testSetup())
	require.NoError(t, s.Apply(Resign{Player: Player2}))

	v := s.Snapshot()
	assert.Equal(t, "Over", v.Phase)
	require.NotNil(t, v.Victory)
	assert.Equal(t, 0, v.Victory.Winner)
	assert.Equal(t, "Resign", v.Victory.Kind)
}

func TestRandomSetupIsLegal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		setup := RandomSetup(rand.New(rand.NewSource(seed)))
		require.NoError(t, setup.validate(), "seed %d", seed)
	}
}

func TestRandomSetupPlaysOut(t *testing.T) {
	setup := RandomSetup(rand.New(rand.NewSource(7)))
	s := draftedState(t, setup)

	assert.Equal(t, PhaseTurn, s.Phase())
	assert.Len(t, s.Deck().Playable(), 6)
}
