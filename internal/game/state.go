// Package game implements the duel engine: a deterministic two-player
// state machine driven by actions. The engine is pure; randomness enters
// only through the Setup handed to the Prepare action, so a game replays
// identically from its action log.
package game

import (
	"errors"

	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/deck"
	"github.com/openduel/duel-server-go/internal/game/economy"
)

var (
	// ErrActionNotAllowed rejects an action that is invalid in the
	// current state.
	ErrActionNotAllowed = errors.New("game: action not allowed")
	// ErrNotEnoughCoins rejects a payment the city cannot afford.
	ErrNotEnoughCoins = errors.New("game: not enough coins")
)

// Player identifies one of the two seats.
type Player int

const (
	Player1 Player = iota
	Player2

	noPlayer Player = -1
)

// Next returns the opposing seat.
func (p Player) Next() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "Unknown"
}

// Phase is the kind of action the state is waiting for.
type Phase int

const (
	PhasePrepare Phase = iota + 1
	PhaseWondersSelection
	PhaseTurn
	PhaseWhoBeginsTheNextAgeSelection
	PhaseBoardTokenSelection
	PhaseRandomTokenSelection
	PhaseDiscardedBuildingSelection
	PhaseTopLineBuildingSelection
	PhaseReturnedBuildingsSelection
	PhaseDestructBuildingSelection
	PhaseOver
)

var phaseNames = map[Phase]string{
	PhasePrepare:                      "Prepare",
	PhaseWondersSelection:             "WondersSelection",
	PhaseTurn:                         "Turn",
	PhaseWhoBeginsTheNextAgeSelection: "WhoBeginsTheNextAgeSelection",
	PhaseBoardTokenSelection:          "BoardTokenSelection",
	PhaseRandomTokenSelection:         "RandomTokenSelection",
	PhaseDiscardedBuildingSelection:   "DiscardedBuildingSelection",
	PhaseTopLineBuildingSelection:     "TopLineBuildingSelection",
	PhaseReturnedBuildingsSelection:   "ReturnedBuildingsSelection",
	PhaseDestructBuildingSelection:    "DestructBuildingSelection",
	PhaseOver:                         "Over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// VictoryKind is how a game ended.
type VictoryKind int

const (
	VictoryCivilian VictoryKind = iota + 1
	VictoryMilitarySupremacy
	VictoryScienceSupremacy
	VictoryResign
)

var victoryNames = map[VictoryKind]string{
	VictoryCivilian:          "Civilian",
	VictoryMilitarySupremacy: "MilitarySupremacy",
	VictoryScienceSupremacy:  "ScienceSupremacy",
	VictoryResign:            "Resign",
}

func (v VictoryKind) String() string {
	if name, ok := victoryNames[v]; ok {
		return name
	}
	return "Unknown"
}

// Victory records the outcome of a finished game.
type Victory struct {
	Winner Player
	Kind   VictoryKind
}

const (
	// WonderPoolSize is how many wonders the Prepare setup deals out.
	WonderPoolSize = 8
	// WonderSelectionSize is how many wonders are offered at a time
	// during the draft.
	WonderSelectionSize = 4
	// WondersConstructLimit caps the constructed wonders over both
	// cities; the last dealt wonder stays unbuilt.
	WondersConstructLimit = 7
	// BoardTokenCount is how many progress tokens the setup lays on the
	// board; the rest stay boxed for The Great Library.
	BoardTokenCount = 5
	// RandomTokenOffer is how many boxed tokens The Great Library shows.
	RandomTokenOffer = 3
	// SupremacySymbolCount is how many distinct scientific symbols end
	// the game at once.
	SupremacySymbolCount = 6
)

// Setup is the randomness of one game, fixed up front by the Prepare
// action: the eight drafted wonders in offer order, all ten progress
// tokens (first five on the board, rest boxed) and the twenty-card deal of
// each age.
type Setup struct {
	Wonders []content.WonderID
	Tokens  []content.TokenID
	Decks   map[content.Age][]content.BuildingID
}

// postEffect is one queued interactive effect. Its candidates are
// snapshotted when the effect is queued, not when the pick opens.
type postEffect struct {
	player    Player
	effect    content.Effect
	buildings []content.BuildingID
	tokens    []content.TokenID
}

// State is a complete game. The zero value is not usable; create one with
// NewState and drive it with Apply.
type State struct {
	age    content.Age
	phase  Phase
	deck   *deck.Deck
	cities [2]*City
	turn   Player
	starts Player

	// fallback remembers whose turn resumes once a run of interactive
	// post effects is finished.
	fallback  Player
	playAgain bool

	setup         Setup
	draftPool     []content.WonderID
	draftReserve  []content.WonderID
	draftPicks    int
	boardTokens   []content.TokenID
	reserveTokens []content.TokenID
	discarded     []content.BuildingID
	post          []postEffect
	destruct      content.Kind

	// The candidates of the currently open interactive pick.
	tokenOffer    []content.TokenID
	buildingOffer []content.BuildingID

	victory *Victory
}

var draftOrder = [WonderPoolSize]Player{
	Player1, Player2, Player2, Player1,
	Player2, Player1, Player1, Player2,
}

// NewState returns a fresh game between the two named cities, waiting for
// its Prepare action.
func NewState(name1, name2 string) *State {
	return &State{
		phase:    PhasePrepare,
		cities:   [2]*City{newCity(name1), newCity(name2)},
		turn:     Player1,
		starts:   Player1,
		fallback: noPlayer,
	}
}

// FromActions replays a game from its action log.
func FromActions(name1, name2 string, actions ...Action) (*State, error) {
	s := NewState(name1, name2)
	for _, a := range actions {
		if err := s.Apply(a); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Age returns the current age; zero before the first deck is dealt.
func (s *State) Age() content.Age { return s.age }

// Phase returns what the state is waiting for.
func (s *State) Phase() Phase { return s.phase }

// Turn returns the seat expected to act.
func (s *State) Turn() Player { return s.turn }

// City returns the city of seat p.
func (s *State) City(p Player) *City { return s.cities[p] }

// Me returns the city whose turn it is.
func (s *State) Me() *City { return s.cities[s.turn] }

// Enemy returns the city opposing the current turn.
func (s *State) Enemy() *City { return s.cities[s.turn.Next()] }

// Deck returns the live card structure of the current age.
func (s *State) Deck() *deck.Deck { return s.deck }

// DraftPool returns the wonders currently offered to the draft.
func (s *State) DraftPool() []content.WonderID { return s.draftPool }

// BoardTokens returns the progress tokens still on the board.
func (s *State) BoardTokens() []content.TokenID { return s.boardTokens }

// TokenOffer returns the progress tokens offered to the open pick, if any.
func (s *State) TokenOffer() []content.TokenID { return s.tokenOffer }

// BuildingOffer returns the buildings offered to the open pick, if any.
func (s *State) BuildingOffer() []content.BuildingID { return s.buildingOffer }

// Discarded returns the discard pile in discard order.
func (s *State) Discarded() []content.BuildingID { return s.discarded }

// Over reports whether the game has ended.
func (s *State) Over() bool { return s.phase == PhaseOver }

// Victory returns the outcome, or nil while the game is running.
func (s *State) Victory() *Victory { return s.victory }

func (s *State) win(p Player, kind VictoryKind) {
	if s.phase == PhaseOver {
		return
	}
	s.refresh()
	s.victory = &Victory{Winner: p, Kind: kind}
	s.phase = PhaseOver
}

// payScope maps a building kind to its payment scope.
func payScope(k content.Kind) economy.PayScope {
	if k == content.KindCivilian {
		return economy.PayScopeCivilian
	}
	return economy.PayScopeGlobal
}

// refresh recomputes everything derived from the raw state: floating
// resource prices, face-down reveals, per-city price caches and scores.
func (s *State) refresh() {
	for i, c := range s.cities {
		enemy := s.cities[1-i]
		for _, r := range economy.AllResources {
			c.Bank.SetFloatingPrice(r, enemy.Stock[r])
		}
	}
	if s.deck != nil {
		s.deck.Reveal()
	}
	for i, c := range s.cities {
		c.BuildingPrices = make(map[content.BuildingID]int)
		if s.deck != nil {
			for _, id := range s.deck.Playable() {
				b := content.BuildingByID(id)
				price := 0
				if !c.Chains[id] {
					price = c.Bank.Price(payScope(b.Kind), b.Cost, c.Stock)
				}
				c.BuildingPrices[id] = price
			}
		}
		c.WonderPrices = make(map[content.WonderID]int)
		for _, w := range c.Wonders {
			if !w.Constructed {
				wonder := content.WonderByID(w.ID)
				c.WonderPrices[w.ID] = c.Bank.Price(economy.PayScopeWonders, wonder.Cost, c.Stock)
			}
		}
		c.Score = s.scoreOf(Player(i))
	}
}

// maxBonus counts a bonus in whichever city has more of it.
func (s *State) maxBonus(b content.Bonus) int {
	a, c := s.cities[0].bonus(b), s.cities[1].bonus(b)
	if a > c {
		return a
	}
	return c
}

// unitPoints sums the victory points a unit's effect list is worth right
// now for seat p.
func (s *State) unitPoints(p Player, effects []content.Effect) int {
	total := 0
	for _, e := range effects {
		switch e.Kind {
		case content.EffectPoints:
			total += e.Points
		case content.EffectGuild:
			total += e.Points * s.maxBonus(e.Bonus)
		case content.EffectMathematics:
			total += 3 * len(s.cities[p].Tokens)
		}
	}
	return total
}

func (s *State) scoreOf(p Player) Score {
	c := s.cities[p]
	var sc Score
	for _, id := range c.BuildingList() {
		b := content.BuildingByID(id)
		pts := s.unitPoints(p, b.Effects)
		switch b.Kind {
		case content.KindCivilian:
			sc.Civilian += pts
		case content.KindScientific:
			sc.Science += pts
		case content.KindCommercial:
			sc.Commercial += pts
		case content.KindGuild:
			sc.Guilds += pts
		}
	}
	for _, w := range c.Wonders {
		if w.Constructed {
			sc.Wonders += s.unitPoints(p, content.WonderByID(w.ID).Effects)
		}
	}
	for _, t := range c.Tokens {
		sc.Tokens += s.unitPoints(p, content.TokenByID(t).Effects)
	}
	sc.Coins = c.Coins / 3
	sc.Military = c.Track.Points()
	sc.Total = sc.Civilian + sc.Science + sc.Commercial + sc.Guilds +
		sc.Wonders + sc.Tokens + sc.Coins + sc.Military
	return sc
}

// nextAgeChooser is the seat that decides who begins the next age: the
// militarily weaker one, or on parity whoever acts right now.
func (s *State) nextAgeChooser() Player {
	a, b := s.cities[0].Track.Pos, s.cities[1].Track.Pos
	switch {
	case a < b:
		return Player1
	case b < a:
		return Player2
	}
	return s.turn
}

func (s *State) enterNextAgeSelection() {
	s.playAgain = false
	s.turn = s.nextAgeChooser()
	s.phase = PhaseWhoBeginsTheNextAgeSelection
}

func (s *State) dealDeck() error {
	d, err := deck.New(s.age, s.setup.Decks[s.age])
	if err != nil {
		return err
	}
	s.deck = d
	return nil
}

// resolve advances the state machine after an action has mutated the raw
// state: it decides whose turn is next, opens pending interactive post
// effects one at a time, rolls over ages and finishes the game.
func (s *State) resolve() {
	if s.phase == PhaseOver {
		return
	}

	if s.phase == PhaseTurn && s.deck.Empty() && !s.age.IsLast() && len(s.post) == 0 {
		s.refresh()
		s.enterNextAgeSelection()
		return
	}

	if s.playAgain {
		s.playAgain = false
	} else {
		s.turn = s.turn.Next()
	}

	if s.phase == PhaseWhoBeginsTheNextAgeSelection && s.deck.Empty() {
		s.age = s.age.Next()
		if err := s.dealDeck(); err != nil {
			panic(err)
		}
		s.phase = PhaseTurn
	}

	s.refresh()

	if len(s.post) > 0 {
		if s.fallback == noPlayer {
			s.fallback = s.turn
		}
		pe := s.post[0]
		s.post = s.post[1:]
		s.openPostEffect(pe)
		return
	}

	if s.fallback != noPlayer {
		if s.deck.Empty() && !s.age.IsLast() {
			s.fallback = noPlayer
			s.enterNextAgeSelection()
			return
		}
		s.turn = s.fallback
		s.fallback = noPlayer
		s.phase = PhaseTurn
		s.refresh()
	}

	if s.phase == PhaseTurn && s.deck.Empty() && s.age.IsLast() {
		s.finishCivilian()
	}
}

// finishCivilian ends a played-out game: higher total wins, ties fall to
// civilian points and then to the seat that started the game.
func (s *State) finishCivilian() {
	s.refresh()
	a, b := s.cities[0].Score, s.cities[1].Score
	winner := s.starts
	switch {
	case a.Total > b.Total:
		winner = Player1
	case b.Total > a.Total:
		winner = Player2
	case a.Civilian > b.Civilian:
		winner = Player1
	case b.Civilian > a.Civilian:
		winner = Player2
	}
	s.win(winner, VictoryCivilian)
}
