package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/game"
	"github.com/openduel/duel-server-go/internal/game/content"
)

const (
	aliceID = int64(1)
	bobID   = int64(2)
	eveID   = int64(99)
)

func startedMatch(t *testing.T) *Match {
	t.Helper()
	mgr := NewManager(1, zap.NewNop())
	m := mgr.Create(aliceID, "alice")
	require.NoError(t, m.Join(bobID, "bob"))
	return m
}

func TestCreateAndJoin(t *testing.T) {
	mgr := NewManager(1, zap.NewNop())
	m := mgr.Create(aliceID, "alice")

	summary := m.Summary()
	assert.Equal(t, "WAITING", summary.Status)
	assert.Equal(t, []string{"alice"}, summary.Players)

	require.NoError(t, m.Join(bobID, "bob"))

	summary = m.Summary()
	assert.Equal(t, "IN_PROGRESS", summary.Status)
	assert.Equal(t, []string{"alice", "bob"}, summary.Players)

	view := m.Snapshot()
	assert.Equal(t, "WondersSelection", view.Phase)
	assert.Len(t, view.DraftPool, game.WonderSelectionSize)
}

func TestJoinOwnMatch(t *testing.T) {
	mgr := NewManager(1, zap.NewNop())
	m := mgr.Create(aliceID, "alice")

	assert.Error(t, m.Join(aliceID, "alice"))
}

func TestJoinStartedMatch(t *testing.T) {
	m := startedMatch(t)
	assert.Error(t, m.Join(eveID, "eve"))
}

func TestApplyEnforcesSeats(t *testing.T) {
	m := startedMatch(t)

	pick := game.PickWonder{Wonder: content.WonderID(m.Snapshot().DraftPool[0].ID)}

	assert.ErrorIs(t, m.Apply(eveID, pick), ErrNotSeated)
	assert.ErrorIs(t, m.Apply(bobID, pick), ErrNotYourTurn)

	require.NoError(t, m.Apply(aliceID, pick))
	assert.Equal(t, int(game.Player2), m.Snapshot().Turn)
}

func TestApplyBeforeStart(t *testing.T) {
	mgr := NewManager(1, zap.NewNop())
	m := mgr.Create(aliceID, "alice")

	err := m.Apply(aliceID, game.Resign{})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestResignFinishesMatch(t *testing.T) {
	m := startedMatch(t)

	// Resigning is allowed even out of turn and always folds the
	// caller's own seat.
	require.NoError(t, m.Apply(bobID, game.Resign{Player: game.Player1}))

	summary := m.Summary()
	assert.Equal(t, "FINISHED", summary.Status)
	require.NotNil(t, summary.EndTime)

	view := m.Snapshot()
	require.NotNil(t, view.Victory)
	assert.Equal(t, int(game.Player1), view.Victory.Winner)
	assert.Equal(t, "Resign", view.Victory.Kind)

	err := m.Apply(aliceID, game.PickWonder{})
	assert.ErrorIs(t, err, game.ErrActionNotAllowed)
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	m := startedMatch(t)

	updates, cancel := m.Subscribe()
	defer cancel()

	pick := game.PickWonder{Wonder: content.WonderID(m.Snapshot().DraftPool[0].ID)}
	require.NoError(t, m.Apply(aliceID, pick))

	select {
	case view := <-updates:
		assert.Equal(t, int(game.Player2), view.Turn)
	default:
		t.Fatal("no update delivered")
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	m := startedMatch(t)

	updates, cancel := m.Subscribe()
	cancel()

	_, open := <-updates
	assert.False(t, open)

	// Cancelling twice must not panic.
	cancel()
}

func TestManagerListNewestFirst(t *testing.T) {
	mgr := NewManager(1, zap.NewNop())
	for i := 0; i < 3; i++ {
		mgr.Create(int64(i+1), fmt.Sprintf("player%d", i+1))
	}

	list := mgr.List()
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreateTime.After(list[i-1].CreateTime))
	}
}

func TestManagerGetAndRemove(t *testing.T) {
	mgr := NewManager(1, zap.NewNop())
	m := mgr.Create(aliceID, "alice")

	got, err := mgr.Get(m.ID)
	require.NoError(t, err)
	assert.Same(t, m, got)

	mgr.Remove(m.ID)
	_, err = mgr.Get(m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActionLogReplaysToSameState(t *testing.T) {
	m := startedMatch(t)

	pick := func(id int64) {
		require.NoError(t, m.Apply(id, game.PickWonder{Wonder: content.WonderID(m.Snapshot().DraftPool[0].ID)}))
	}
	// Snake draft order over the first offer of four.
	pick(aliceID)
	pick(bobID)
	pick(bobID)
	pick(aliceID)

	replayed, err := game.FromActions("alice", "bob", m.Actions()...)
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot(), replayed.Snapshot())
}

func TestRandomSetupsDiffer(t *testing.T) {
	mgr := NewManager(42, zap.NewNop())

	first := mgr.Create(aliceID, "alice")
	require.NoError(t, first.Join(bobID, "bob"))
	second := mgr.Create(aliceID, "alice")
	require.NoError(t, second.Join(bobID, "bob"))

	assert.NotEqual(t, first.Snapshot().DraftPool, second.Snapshot().DraftPool)
}
