// Package match hosts running games and fans state updates out to
// subscribers.
package match

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/game"
)

// Status is the lifecycle state of a match.
type Status int

const (
	StatusWaiting Status = iota
	StatusInProgress
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrNotFound is returned for unknown match IDs.
	ErrNotFound = errors.New("match not found")
	// ErrNotSeated is returned when the user has no seat in the match.
	ErrNotSeated = errors.New("not a player in this match")
	// ErrNotYourTurn is returned when the acting user is seated but it
	// is the opponent's move.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrNotStarted is returned for actions before both seats are
	// filled.
	ErrNotStarted = errors.New("match has not started")
)

type seat struct {
	UserID   int64
	Nickname string
}

// Match is one hosted game between two seats.
type Match struct {
	ID         string
	CreateTime time.Time

	mu       sync.RWMutex
	status   Status
	seats    [2]seat
	joined   int
	state    *game.State
	log      []game.Action
	subs     map[chan game.View]struct{}
	rng      *rand.Rand
	logger   *zap.Logger
	finished *time.Time
}

// Summary is the listing view of a match.
type Summary struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Players    []string   `json:"players"`
	CreateTime time.Time  `json:"create_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}

func newMatch(host seat, rng *rand.Rand, logger *zap.Logger) *Match {
	return &Match{
		ID:         uuid.NewString(),
		CreateTime: time.Now(),
		status:     StatusWaiting,
		seats:      [2]seat{host},
		joined:     1,
		subs:       make(map[chan game.View]struct{}),
		rng:        rng,
		logger:     logger,
	}
}

// Join fills the second seat and starts the game, dealing the wonder
// draft.
func (m *Match) Join(userID int64, nickname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusWaiting {
		return fmt.Errorf("match already started")
	}
	if m.seats[0].UserID == userID {
		return fmt.Errorf("already seated")
	}

	m.seats[1] = seat{UserID: userID, Nickname: nickname}
	m.joined = 2
	m.status = StatusInProgress

	deal := game.Prepare{Setup: game.RandomSetup(m.rng)}
	m.state = game.NewState(m.seats[0].Nickname, m.seats[1].Nickname)
	if err := m.state.Apply(deal); err != nil {
		return fmt.Errorf("deal game: %w", err)
	}
	m.log = append(m.log, deal)

	m.logger.Info("match started",
		zap.String("match_id", m.ID),
		zap.String("player1", m.seats[0].Nickname),
		zap.String("player2", m.seats[1].Nickname),
	)

	m.broadcastLocked()
	return nil
}

// Apply executes an action on behalf of the seated user and notifies
// subscribers. Resignation is allowed out of turn; everything else
// must come from the player whose move it is.
func (m *Match) Apply(userID int64, action game.Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusWaiting {
		return ErrNotStarted
	}

	player, ok := m.seatOf(userID)
	if !ok {
		return ErrNotSeated
	}

	if resign, isResign := action.(game.Resign); isResign {
		// A player may only resign their own seat.
		resign.Player = player
		action = resign
	} else if m.state.Turn() != player {
		return ErrNotYourTurn
	}

	if err := m.state.Apply(action); err != nil {
		return err
	}
	m.log = append(m.log, action)

	if m.state.Over() {
		m.status = StatusFinished
		now := time.Now()
		m.finished = &now
		victory := m.state.Victory()
		m.logger.Info("match finished",
			zap.String("match_id", m.ID),
			zap.String("winner", m.seats[victory.Winner].Nickname),
			zap.String("kind", victory.Kind.String()),
		)
	}

	m.broadcastLocked()
	return nil
}

// SeatOf returns which side the user plays.
func (m *Match) SeatOf(userID int64) (game.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seatOf(userID)
}

func (m *Match) seatOf(userID int64) (game.Player, bool) {
	for i := 0; i < m.joined; i++ {
		if m.seats[i].UserID == userID {
			return game.Player(i), true
		}
	}
	return 0, false
}

// Snapshot returns the current game view. Before the second player
// joins it reports an empty view with only the match metadata
// meaningful.
func (m *Match) Snapshot() game.View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == nil {
		return game.View{}
	}
	return m.state.Snapshot()
}

// Actions returns the applied action log, starting with the opening
// deal. Replaying it through the engine reproduces the current state.
func (m *Match) Actions() []game.Action {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]game.Action(nil), m.log...)
}

// Summary returns the listing view of the match.
func (m *Match) Summary() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	players := make([]string, 0, m.joined)
	for i := 0; i < m.joined; i++ {
		players = append(players, m.seats[i].Nickname)
	}
	return Summary{
		ID:         m.ID,
		Status:     m.status.String(),
		Players:    players,
		CreateTime: m.CreateTime,
		EndTime:    cloneTime(m.finished),
	}
}

// Subscribe registers a listener for state updates. The returned
// cancel function must be called when the listener goes away. Slow
// listeners miss intermediate updates rather than block the match.
func (m *Match) Subscribe() (<-chan game.View, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan game.View, 8)
	m.subs[ch] = struct{}{}

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[ch]; ok {
			delete(m.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (m *Match) broadcastLocked() {
	view := m.state.Snapshot()
	for ch := range m.subs {
		select {
		case ch <- view:
		default:
		}
	}
}

func cloneTime(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	cp := *src
	return &cp
}

// Manager tracks all hosted matches.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
	rng     *rand.Rand
	rngMu   sync.Mutex
	logger  *zap.Logger
}

// NewManager creates a match manager seeded from the given source.
func NewManager(seed int64, logger *zap.Logger) *Manager {
	return &Manager{
		matches: make(map[string]*Match),
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
}

// Create opens a new match hosted by the given user.
func (m *Manager) Create(userID int64, nickname string) *Match {
	m.rngMu.Lock()
	matchRng := rand.New(rand.NewSource(m.rng.Int63()))
	m.rngMu.Unlock()

	match := newMatch(seat{UserID: userID, Nickname: nickname}, matchRng, m.logger)

	m.mu.Lock()
	m.matches[match.ID] = match
	m.mu.Unlock()

	m.logger.Info("match created",
		zap.String("match_id", match.ID),
		zap.String("host", nickname),
	)
	return match
}

// Get retrieves a match by ID.
func (m *Manager) Get(id string) (*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	match, ok := m.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return match, nil
}

// List returns summaries of all matches, newest first.
func (m *Manager) List() []Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]Summary, 0, len(m.matches))
	for _, match := range m.matches {
		summaries = append(summaries, match.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreateTime.After(summaries[j].CreateTime)
	})
	return summaries
}

// Remove drops a match from the registry.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.matches, id)
	m.mu.Unlock()

	m.logger.Info("match removed", zap.String("match_id", id))
}
