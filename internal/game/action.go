package game

import (
	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/deck"
)

// Action is one move applied to a game. Actions validate themselves
// against the state before mutating anything, so a rejected action leaves
// the game untouched.
type Action interface {
	apply(s *State) error
}

// Apply validates and executes a on the game.
func (s *State) Apply(a Action) error {
	if s.phase == PhaseOver {
		return ErrActionNotAllowed
	}
	return a.apply(s)
}

// Prepare fixes the game's randomness and opens the wonder draft.
type Prepare struct {
	Setup Setup
}

func (a Prepare) apply(s *State) error {
	if s.phase != PhasePrepare {
		return ErrActionNotAllowed
	}
	if err := a.Setup.validate(); err != nil {
		return err
	}
	s.setup = a.Setup
	s.boardTokens = append([]content.TokenID(nil), a.Setup.Tokens[:BoardTokenCount]...)
	s.reserveTokens = append([]content.TokenID(nil), a.Setup.Tokens[BoardTokenCount:]...)
	s.draftPool = append([]content.WonderID(nil), a.Setup.Wonders[:WonderSelectionSize]...)
	s.draftReserve = append([]content.WonderID(nil), a.Setup.Wonders[WonderSelectionSize:]...)
	s.phase = PhaseWondersSelection
	s.turn = draftOrder[0]
	return nil
}

func (st Setup) validate() error {
	if len(st.Wonders) != WonderPoolSize {
		return ErrActionNotAllowed
	}
	seenW := make(map[content.WonderID]bool)
	for _, id := range st.Wonders {
		if seenW[id] {
			return ErrActionNotAllowed
		}
		seenW[id] = true
		content.WonderByID(id)
	}
	if len(st.Tokens) != len(content.AllTokens()) {
		return ErrActionNotAllowed
	}
	seenT := make(map[content.TokenID]bool)
	for _, id := range st.Tokens {
		if seenT[id] {
			return ErrActionNotAllowed
		}
		seenT[id] = true
		content.TokenByID(id)
	}
	for _, age := range content.Ages {
		deal := st.Decks[age]
		if len(deal) != deck.Size {
			return ErrActionNotAllowed
		}
		seen := make(map[content.BuildingID]bool)
		guilds := 0
		for _, id := range deal {
			if seen[id] {
				return ErrActionNotAllowed
			}
			seen[id] = true
			b := content.BuildingByID(id)
			if b.Age != age {
				return ErrActionNotAllowed
			}
			if b.Kind == content.KindGuild {
				guilds++
			}
		}
		wantGuilds := 0
		if age.IsLast() {
			wantGuilds = deck.GuildCount
		}
		if guilds != wantGuilds {
			return ErrActionNotAllowed
		}
	}
	return nil
}

// PickWonder drafts one wonder from the current offer.
type PickWonder struct {
	Wonder content.WonderID
}

func (a PickWonder) apply(s *State) error {
	if s.phase != PhaseWondersSelection {
		return ErrActionNotAllowed
	}
	idx := -1
	for i, id := range s.draftPool {
		if id == a.Wonder {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrActionNotAllowed
	}

	me := s.cities[s.turn]
	me.Wonders = append(me.Wonders, CityWonder{ID: a.Wonder})
	s.draftPool = append(s.draftPool[:idx], s.draftPool[idx+1:]...)
	s.draftPicks++

	if len(s.draftPool) == 0 && len(s.draftReserve) > 0 {
		s.draftPool, s.draftReserve = s.draftReserve, nil
	}
	if s.draftPicks == WonderPoolSize {
		s.age = content.AgeI
		if err := s.dealDeck(); err != nil {
			panic(err)
		}
		s.phase = PhaseTurn
		s.turn = s.starts
		s.refresh()
		return nil
	}
	s.turn = draftOrder[s.draftPicks]
	return nil
}

// ConstructBuilding takes a playable card and builds it, paying its price
// unless a chain marker makes it free.
type ConstructBuilding struct {
	Building content.BuildingID
}

func (a ConstructBuilding) apply(s *State) error {
	if s.phase != PhaseTurn {
		return ErrActionNotAllowed
	}
	me := s.cities[s.turn]
	price, ok := me.BuildingPrices[a.Building]
	if !ok {
		return ErrActionNotAllowed
	}
	if price > me.Coins {
		return ErrNotEnoughCoins
	}

	viaChain := me.Chains[a.Building]
	s.deck.Pull(a.Building)
	if price > 0 {
		s.pay(s.turn, price, content.BuildingByID(a.Building).Cost.Coins)
	}
	s.constructBuilding(s.turn, a.Building, viaChain)
	s.resolve()
	return nil
}

// DiscardBuilding takes a playable card to the discard pile for coins.
type DiscardBuilding struct {
	Building content.BuildingID
}

func (a DiscardBuilding) apply(s *State) error {
	if s.phase != PhaseTurn {
		return ErrActionNotAllowed
	}
	me := s.cities[s.turn]
	if _, ok := me.BuildingPrices[a.Building]; !ok {
		return ErrActionNotAllowed
	}
	s.deck.Pull(a.Building)
	s.discarded = append(s.discarded, a.Building)
	me.Coins += me.Bank.DiscardReward
	s.resolve()
	return nil
}

// ConstructWonder takes a playable card face down and builds one of the
// city's drafted wonders over it.
type ConstructWonder struct {
	Wonder   content.WonderID
	Building content.BuildingID
}

func (a ConstructWonder) apply(s *State) error {
	if s.phase != PhaseTurn {
		return ErrActionNotAllowed
	}
	me := s.cities[s.turn]
	w := me.wonder(a.Wonder)
	if w == nil || w.Constructed {
		return ErrActionNotAllowed
	}
	if s.cities[0].ConstructedWonders()+s.cities[1].ConstructedWonders() >= WondersConstructLimit {
		return ErrActionNotAllowed
	}
	if _, ok := me.BuildingPrices[a.Building]; !ok {
		return ErrActionNotAllowed
	}
	price := me.WonderPrices[a.Wonder]
	if price > me.Coins {
		return ErrNotEnoughCoins
	}

	s.deck.Pull(a.Building)
	if price > 0 {
		s.pay(s.turn, price, 0)
	}
	s.constructWonder(s.turn, w, a.Building)
	s.resolve()
	return nil
}

// SelectWhoBeginsTheNextAge is the militarily weaker player's choice of
// who opens the next age.
type SelectWhoBeginsTheNextAge struct {
	Player Player
}

func (a SelectWhoBeginsTheNextAge) apply(s *State) error {
	if s.phase != PhaseWhoBeginsTheNextAgeSelection {
		return ErrActionNotAllowed
	}
	if a.Player != Player1 && a.Player != Player2 {
		return ErrActionNotAllowed
	}
	s.turn = a.Player
	s.playAgain = true
	s.resolve()
	return nil
}

// PickBoardToken claims a progress token from the board after a science
// pair.
type PickBoardToken struct {
	Token content.TokenID
}

func (a PickBoardToken) apply(s *State) error {
	if s.phase != PhaseBoardTokenSelection {
		return ErrActionNotAllowed
	}
	if !tokenOffered(s.tokenOffer, a.Token) {
		return ErrActionNotAllowed
	}
	for i, id := range s.boardTokens {
		if id == a.Token {
			s.boardTokens = append(s.boardTokens[:i], s.boardTokens[i+1:]...)
			break
		}
	}
	s.tokenOffer = nil
	s.claimToken(a.Token)
	return nil
}

// PickRandomToken claims one of the boxed tokens offered by The Great
// Library.
type PickRandomToken struct {
	Token content.TokenID
}

func (a PickRandomToken) apply(s *State) error {
	if s.phase != PhaseRandomTokenSelection {
		return ErrActionNotAllowed
	}
	if !tokenOffered(s.tokenOffer, a.Token) {
		return ErrActionNotAllowed
	}
	for i, id := range s.reserveTokens {
		if id == a.Token {
			s.reserveTokens = append(s.reserveTokens[:i], s.reserveTokens[i+1:]...)
			break
		}
	}
	s.tokenOffer = nil
	s.claimToken(a.Token)
	return nil
}

func tokenOffered(offer []content.TokenID, id content.TokenID) bool {
	for _, t := range offer {
		if t == id {
			return true
		}
	}
	return false
}

func buildingOffered(offer []content.BuildingID, id content.BuildingID) bool {
	for _, b := range offer {
		if b == id {
			return true
		}
	}
	return false
}

func (s *State) claimToken(id content.TokenID) {
	me := s.cities[s.turn]
	me.Tokens = append(me.Tokens, id)
	for _, e := range content.TokenByID(id).Effects {
		s.applyEffect(s.turn, e)
	}
	s.playAgain = true
	s.resolve()
}

// PickTopLineBuilding constructs a revealed first-row card for free.
type PickTopLineBuilding struct {
	Building content.BuildingID
}

func (a PickTopLineBuilding) apply(s *State) error {
	if s.phase != PhaseTopLineBuildingSelection {
		return ErrActionNotAllowed
	}
	if !buildingOffered(s.buildingOffer, a.Building) {
		return ErrActionNotAllowed
	}
	s.buildingOffer = nil
	s.deck.Pull(a.Building)
	s.constructFreeBuilding(s.turn, a.Building)
	s.playAgain = true
	s.resolve()
	return nil
}

// PickDiscardedBuilding constructs a card from the discard pile for free.
type PickDiscardedBuilding struct {
	Building content.BuildingID
}

func (a PickDiscardedBuilding) apply(s *State) error {
	if s.phase != PhaseDiscardedBuildingSelection {
		return ErrActionNotAllowed
	}
	if !buildingOffered(s.buildingOffer, a.Building) {
		return ErrActionNotAllowed
	}
	for i, id := range s.discarded {
		if id == a.Building {
			s.discarded = append(s.discarded[:i], s.discarded[i+1:]...)
			break
		}
	}
	s.buildingOffer = nil
	s.constructFreeBuilding(s.turn, a.Building)
	s.playAgain = true
	s.resolve()
	return nil
}

// PickReturnedBuildings constructs two of the cards left out of the
// current age's deal for free.
type PickReturnedBuildings struct {
	First  content.BuildingID
	Second content.BuildingID
}

func (a PickReturnedBuildings) apply(s *State) error {
	if s.phase != PhaseReturnedBuildingsSelection {
		return ErrActionNotAllowed
	}
	if a.First == a.Second {
		return ErrActionNotAllowed
	}
	if !buildingOffered(s.buildingOffer, a.First) || !buildingOffered(s.buildingOffer, a.Second) {
		return ErrActionNotAllowed
	}
	s.buildingOffer = nil
	s.constructFreeBuilding(s.turn, a.First)
	s.constructFreeBuilding(s.turn, a.Second)
	s.playAgain = true
	s.resolve()
	return nil
}

// DestructBuilding removes an opposing building named by a wonder's
// destruct effect. The card goes to the discard pile.
type DestructBuilding struct {
	Building content.BuildingID
}

func (a DestructBuilding) apply(s *State) error {
	if s.phase != PhaseDestructBuildingSelection {
		return ErrActionNotAllowed
	}
	if !buildingOffered(s.buildingOffer, a.Building) {
		return ErrActionNotAllowed
	}
	enemy := s.cities[s.turn.Next()]
	if !enemy.Buildings[a.Building] {
		return ErrActionNotAllowed
	}
	s.buildingOffer = nil
	delete(enemy.Buildings, a.Building)
	for _, e := range content.BuildingByID(a.Building).Effects {
		s.rollbackEffect(s.turn.Next(), e)
	}
	s.discarded = append(s.discarded, a.Building)
	s.playAgain = true
	s.resolve()
	return nil
}

// Resign concedes the game for the named seat.
type Resign struct {
	Player Player
}

func (a Resign) apply(s *State) error {
	if a.Player != Player1 && a.Player != Player2 {
		return ErrActionNotAllowed
	}
	s.win(a.Player.Next(), VictoryResign)
	return nil
}
