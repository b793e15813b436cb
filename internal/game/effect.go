package game

import (
	"fmt"

	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/economy"
)

// applyEffect executes one effect for seat p. Interactive effects are not
// executed here; they are queued and opened one at a time by resolve.
func (s *State) applyEffect(p Player, e content.Effect) {
	me, enemy := s.cities[p], s.cities[p.Next()]
	switch e.Kind {
	case content.EffectChain:
		me.Chains[e.Building] = true
	case content.EffectCoins:
		me.Coins += e.Coins
		if me.Coins < 0 {
			me.Coins = 0
		}
	case content.EffectCoinsFor:
		me.Coins += e.Coins * me.bonus(e.Bonus)
	case content.EffectDiscardRewardAdjuster:
		me.Bank.DiscardReward++
	case content.EffectDiscounter:
		me.Bank.AddDiscount(economy.Discount{Scope: e.Scope, Resources: e.Resources, Count: e.Count})
	case content.EffectFine:
		enemy.Coins -= e.Coins
		if enemy.Coins < 0 {
			enemy.Coins = 0
		}
	case content.EffectFixedResourcePrice:
		for _, r := range e.Resources {
			me.Bank.FixPrice(r)
		}
	case content.EffectGuild:
		me.Coins += e.Coins * s.maxBonus(e.Bonus)
	case content.EffectMilitary:
		power := e.Power
		if !e.IgnoreBoosts && me.HasToken(content.Strategy) {
			power++
		}
		fine, supremacy := me.Track.Advance(&enemy.Track, power)
		enemy.Coins -= fine
		if enemy.Coins < 0 {
			enemy.Coins = 0
		}
		if supremacy {
			s.win(p, VictoryMilitarySupremacy)
		}
	case content.EffectPlayAgain:
		s.playAgain = true
	case content.EffectResource:
		me.Stock[e.Resource] += e.Count
	case content.EffectScience:
		me.Symbols[e.Symbol]++
		if me.Symbols[e.Symbol] == 2 {
			s.queuePostEffect(p, content.PickBoardToken())
		}
		if me.DistinctSymbols() >= SupremacySymbolCount {
			s.win(p, VictoryScienceSupremacy)
		}
	case content.EffectDestructBuilding,
		content.EffectPickBoardToken,
		content.EffectPickDiscardedBuilding,
		content.EffectPickRandomToken,
		content.EffectPickReturnedBuildings,
		content.EffectPickTopLineBuilding:
		s.queuePostEffect(p, e)
	case content.EffectMathematics, content.EffectPoints:
		// Scored, not executed.
	default:
		panic(fmt.Sprintf("game: unhandled effect kind %d", e.Kind))
	}
}

// rollbackEffect undoes a destroyed building's standing effect. Only
// resource production can be targeted by a destruct effect.
func (s *State) rollbackEffect(p Player, e content.Effect) {
	if e.Kind != content.EffectResource {
		return
	}
	me := s.cities[p]
	me.Stock[e.Resource] -= e.Count
	if me.Stock[e.Resource] < 0 {
		me.Stock[e.Resource] = 0
	}
}

// queuePostEffect snapshots an interactive effect's candidates and queues
// it. Candidates are fixed here; mutations of the board, deck or discard
// pile between queueing and the pick do not change what the pick offers.
// An effect with nothing to offer is dropped outright.
func (s *State) queuePostEffect(p Player, e content.Effect) {
	pe := postEffect{player: p, effect: e}
	switch e.Kind {
	case content.EffectDestructBuilding:
		pe.buildings = s.cities[p.Next()].BuildingsByKind(e.BuildingKind)
	case content.EffectPickBoardToken:
		pe.tokens = append([]content.TokenID(nil), s.boardTokens...)
	case content.EffectPickRandomToken:
		n := RandomTokenOffer
		if n > len(s.reserveTokens) {
			n = len(s.reserveTokens)
		}
		pe.tokens = append([]content.TokenID(nil), s.reserveTokens[:n]...)
	case content.EffectPickDiscardedBuilding:
		pe.buildings = append([]content.BuildingID(nil), s.discarded...)
	case content.EffectPickTopLineBuilding:
		pe.buildings = append([]content.BuildingID(nil), s.deck.TopLine()...)
	case content.EffectPickReturnedBuildings:
		pe.buildings = append([]content.BuildingID(nil), s.deck.Returned()...)
	default:
		panic(fmt.Sprintf("game: effect kind %d is not interactive", e.Kind))
	}
	if len(pe.buildings) == 0 && len(pe.tokens) == 0 {
		return
	}
	s.post = append(s.post, pe)
}

// openPostEffect turns a queued interactive effect into a selection phase
// for its owner, offering the candidates snapshotted at queue time.
func (s *State) openPostEffect(pe postEffect) {
	switch pe.effect.Kind {
	case content.EffectDestructBuilding:
		s.buildingOffer = pe.buildings
		s.destruct = pe.effect.BuildingKind
		s.phase = PhaseDestructBuildingSelection
	case content.EffectPickBoardToken:
		s.tokenOffer = pe.tokens
		s.phase = PhaseBoardTokenSelection
	case content.EffectPickRandomToken:
		s.tokenOffer = pe.tokens
		s.phase = PhaseRandomTokenSelection
	case content.EffectPickDiscardedBuilding:
		s.buildingOffer = pe.buildings
		s.phase = PhaseDiscardedBuildingSelection
	case content.EffectPickTopLineBuilding:
		s.buildingOffer = pe.buildings
		s.phase = PhaseTopLineBuildingSelection
	case content.EffectPickReturnedBuildings:
		s.buildingOffer = pe.buildings
		s.phase = PhaseReturnedBuildingsSelection
	default:
		panic(fmt.Sprintf("game: effect kind %d is not interactive", pe.effect.Kind))
	}
	s.turn = pe.player
}

// constructBuilding applies the building's effects and then adds it to
// seat p's city, so a coins-per bonus never counts the unit itself.
func (s *State) constructBuilding(p Player, id content.BuildingID, viaChain bool) {
	me := s.cities[p]
	for _, e := range content.BuildingByID(id).Effects {
		s.applyEffect(p, e)
	}
	me.Buildings[id] = true
	if viaChain && me.HasToken(content.Urbanism) {
		me.Coins += 4
	}
}

// constructFreeBuilding builds a card gained through an interactive pick.
// Such constructions are peaceful: military effects do not move the pawn
// and charge no fine.
func (s *State) constructFreeBuilding(p Player, id content.BuildingID) {
	me := s.cities[p]
	for _, e := range content.BuildingByID(id).Effects {
		if e.Kind == content.EffectMilitary {
			continue
		}
		s.applyEffect(p, e)
	}
	me.Buildings[id] = true
}

// constructWonder builds the wonder over the pulled pyramid card and
// applies its effects.
func (s *State) constructWonder(p Player, w *CityWonder, building content.BuildingID) {
	me := s.cities[p]
	w.Constructed = true
	w.Building = building
	for _, e := range content.WonderByID(w.ID).Effects {
		s.applyEffect(p, e)
	}
	if me.HasToken(content.Theology) {
		s.playAgain = true
	}
}

// pay debits seat p for a priced construction. With the Economy token the
// opponent pockets the trading part of the payment.
func (s *State) pay(p Player, price, coinCost int) {
	me, enemy := s.cities[p], s.cities[p.Next()]
	me.Coins -= price
	if trade := price - coinCost; trade > 0 && enemy.HasToken(content.Economy) {
		enemy.Coins += trade
	}
}
