// Package content holds the static game catalog: building, wonder and
// progress token definitions together with the effect command set they are
// described with. Everything here is immutable data; the engine package
// interprets the effects against live state.
package content

import (
	"fmt"

	"github.com/openduel/duel-server-go/internal/game/economy"
)

// Age identifies one of the three ages of a game.
type Age int

const (
	AgeI Age = iota + 1
	AgeII
	AgeIII
)

// Ages lists the ages in play order.
var Ages = []Age{AgeI, AgeII, AgeIII}

// Next returns the following age. Calling Next on the last age is a
// programming error.
func (a Age) Next() Age {
	if a.IsLast() {
		panic(fmt.Sprintf("content: age %s has no successor", a))
	}
	return a + 1
}

// IsLast reports whether a is the final age.
func (a Age) IsLast() bool {
	return a == AgeIII
}

var ageNames = map[Age]string{
	AgeI:   "I",
	AgeII:  "II",
	AgeIII: "III",
}

func (a Age) String() string {
	if name, ok := ageNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Kind classifies a building.
type Kind int

const (
	KindRawMaterials Kind = iota + 1
	KindManufacturedGoods
	KindMilitary
	KindScientific
	KindCivilian
	KindCommercial
	KindGuild
)

var kindNames = map[Kind]string{
	KindRawMaterials:      "RawMaterials",
	KindManufacturedGoods: "ManufacturedGoods",
	KindMilitary:          "Military",
	KindScientific:        "Scientific",
	KindCivilian:          "Civilian",
	KindCommercial:        "Commercial",
	KindGuild:             "Guild",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ScientificSymbol identifies a science symbol. Collecting two identical
// symbols grants a progress token pick; six distinct symbols win the game.
type ScientificSymbol int

const (
	SymbolAstrology ScientificSymbol = iota + 1
	SymbolWheel
	SymbolSundial
	SymbolMortar
	SymbolCompass
	SymbolWriting
	SymbolLaw
)

var symbolNames = map[ScientificSymbol]string{
	SymbolAstrology: "Astrology",
	SymbolWheel:     "Wheel",
	SymbolSundial:   "Sundial",
	SymbolMortar:    "Mortar",
	SymbolCompass:   "Compass",
	SymbolWriting:   "Writing",
	SymbolLaw:       "Law",
}

func (s ScientificSymbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Bonus identifies a countable property of a city used by coins-per and
// guild effects.
type Bonus int

const (
	// BonusResources counts raw-material and manufactured-goods buildings.
	BonusResources Bonus = iota + 1
	BonusRawMaterials
	BonusManufacturedGoods
	BonusMilitary
	BonusCommercial
	BonusCivilian
	BonusScience
	// BonusWonder counts constructed wonders.
	BonusWonder
	// BonusCoin counts one per three coins held.
	BonusCoin
)

var bonusNames = map[Bonus]string{
	BonusResources:         "Resources",
	BonusRawMaterials:      "RawMaterials",
	BonusManufacturedGoods: "ManufacturedGoods",
	BonusMilitary:          "Military",
	BonusCommercial:        "Commercial",
	BonusCivilian:          "Civilian",
	BonusScience:           "Science",
	BonusWonder:            "Wonder",
	BonusCoin:              "Coin",
}

func (b Bonus) String() string {
	if name, ok := bonusNames[b]; ok {
		return name
	}
	return "Unknown"
}

// EffectKind tags an Effect value.
type EffectKind int

const (
	EffectChain EffectKind = iota + 1
	EffectCoins
	EffectCoinsFor
	EffectDestructBuilding
	EffectDiscardRewardAdjuster
	EffectDiscounter
	EffectFine
	EffectFixedResourcePrice
	EffectGuild
	EffectMathematics
	EffectMilitary
	EffectPickBoardToken
	EffectPickDiscardedBuilding
	EffectPickRandomToken
	EffectPickReturnedBuildings
	EffectPickTopLineBuilding
	EffectPlayAgain
	EffectPoints
	EffectResource
	EffectScience
)

// Effect is one tagged command in a unit's effect list. Only the fields
// relevant to Kind are set.
type Effect struct {
	Kind EffectKind

	Building     BuildingID         // EffectChain: free follow-on construction
	Coins        int                // EffectCoins, EffectCoinsFor, EffectFine, EffectGuild
	Points       int                // EffectPoints, EffectGuild
	Bonus        Bonus              // EffectCoinsFor, EffectGuild
	BuildingKind Kind               // EffectDestructBuilding
	Scope        economy.PayScope   // EffectDiscounter
	Resources    []economy.Resource // EffectDiscounter, EffectFixedResourcePrice
	Count        int                // EffectDiscounter, EffectResource
	Resource     economy.Resource   // EffectResource
	Power        int                // EffectMilitary
	IgnoreBoosts bool               // EffectMilitary: wonder shields ignore the Strategy token
	Symbol       ScientificSymbol   // EffectScience
}

// Effect constructors, used by the catalog tables below and by tests.

// Chain grants a free follow-on construction of b.
func Chain(b BuildingID) Effect { return Effect{Kind: EffectChain, Building: b} }

// Coins grants (or with a negative count removes) coins, clamped at zero.
func Coins(n int) Effect { return Effect{Kind: EffectCoins, Coins: n} }

// CoinsFor grants n coins per own unit counted by bonus.
func CoinsFor(n int, bonus Bonus) Effect {
	return Effect{Kind: EffectCoinsFor, Coins: n, Bonus: bonus}
}

// Destruct lets the owner destroy one opposing building of kind.
func Destruct(kind Kind) Effect { return Effect{Kind: EffectDestructBuilding, BuildingKind: kind} }

// DiscardRewardBonus raises the owner's discard payout by one.
func DiscardRewardBonus() Effect { return Effect{Kind: EffectDiscardRewardAdjuster} }

// Discounter waives count resources from rs on every payment in scope.
func Discounter(scope economy.PayScope, rs []economy.Resource, count int) Effect {
	return Effect{Kind: EffectDiscounter, Scope: scope, Resources: rs, Count: count}
}

// Fine removes n coins from the opponent, clamped at zero.
func Fine(n int) Effect { return Effect{Kind: EffectFine, Coins: n} }

// FixPrice pins the owner's buy price of rs to the fixed price.
func FixPrice(rs ...economy.Resource) Effect {
	return Effect{Kind: EffectFixedResourcePrice, Resources: rs}
}

// Guild scores points and grants coins per counted unit, using the higher
// of the two cities' counts.
func Guild(bonus Bonus, points, coins int) Effect {
	return Effect{Kind: EffectGuild, Bonus: bonus, Points: points, Coins: coins}
}

// Mathematics scores three points per progress token owned.
func Mathematics() Effect { return Effect{Kind: EffectMathematics} }

// Shields advances the conflict pawn; building shields are boosted by the
// Strategy token.
func Shields(power int) Effect { return Effect{Kind: EffectMilitary, Power: power} }

// WonderShields advances the conflict pawn ignoring the Strategy token.
func WonderShields(power int) Effect {
	return Effect{Kind: EffectMilitary, Power: power, IgnoreBoosts: true}
}

// PickBoardToken opens a progress token pick from the board slots.
func PickBoardToken() Effect { return Effect{Kind: EffectPickBoardToken} }

// PickDiscardedBuilding opens a free construction from the discard pile.
func PickDiscardedBuilding() Effect { return Effect{Kind: EffectPickDiscardedBuilding} }

// PickRandomToken opens a progress token pick from the boxed reserve.
func PickRandomToken() Effect { return Effect{Kind: EffectPickRandomToken} }

// PickReturnedBuildings opens a free construction of two cards left out of
// the current age's deal.
func PickReturnedBuildings() Effect { return Effect{Kind: EffectPickReturnedBuildings} }

// PickTopLineBuilding opens a free construction from the deck's revealed
// first row.
func PickTopLineBuilding() Effect { return Effect{Kind: EffectPickTopLineBuilding} }

// PlayAgain lets the owner take the next turn as well.
func PlayAgain() Effect { return Effect{Kind: EffectPlayAgain} }

// Points scores flat victory points.
func Points(n int) Effect { return Effect{Kind: EffectPoints, Points: n} }

// Produce adds n to the owner's stock of r.
func Produce(r economy.Resource, n int) Effect {
	return Effect{Kind: EffectResource, Resource: r, Count: n}
}

// Science registers a scientific symbol.
func Science(s ScientificSymbol) Effect { return Effect{Kind: EffectScience, Symbol: s} }

// cost builds an economy.Cost from a coin part and repeated resources.
func cost(coins int, rs ...economy.Resource) economy.Cost {
	c := economy.Cost{Coins: coins, Resources: make(economy.Resources)}
	for _, r := range rs {
		c.Resources[r]++
	}
	return c
}

var free = economy.Cost{Resources: economy.Resources{}}
