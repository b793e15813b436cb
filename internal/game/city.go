package game

import (
	"sort"

	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/economy"
	"github.com/openduel/duel-server-go/internal/game/military"
)

// StartingCoins is the treasury each city opens the game with.
const StartingCoins = 7

// CityWonder is one wonder slot of a city: picked during the draft and
// possibly constructed later over a pyramid card.
type CityWonder struct {
	ID          content.WonderID
	Constructed bool
	// Building is the pyramid card tucked under the wonder at
	// construction time.
	Building content.BuildingID
}

// Score is the victory point breakdown of one city. It is recomputed
// after every action.
type Score struct {
	Civilian   int
	Science    int
	Commercial int
	Guilds     int
	Wonders    int
	Tokens     int
	Coins      int
	Military   int
	Total      int
}

// City is everything one player owns: treasury, resource stock, built
// units, chain markers, the market view and the conflict pawn.
type City struct {
	Name      string
	Coins     int
	Stock     economy.Resources
	Buildings map[content.BuildingID]bool
	Wonders   []CityWonder
	Tokens    []content.TokenID
	Symbols   map[content.ScientificSymbol]int
	// Chains marks buildings this city may construct for free.
	Chains map[content.BuildingID]bool
	Bank   *economy.Bank
	Track  military.Track
	Score  Score

	// Price caches, refreshed after every action for the current deck.
	BuildingPrices map[content.BuildingID]int
	WonderPrices   map[content.WonderID]int
}

func newCity(name string) *City {
	return &City{
		Name:      name,
		Coins:     StartingCoins,
		Stock:     make(economy.Resources),
		Buildings: make(map[content.BuildingID]bool),
		Symbols:   make(map[content.ScientificSymbol]int),
		Chains:    make(map[content.BuildingID]bool),
		Bank:      economy.NewBank(),
	}
}

// BuildingList returns the constructed buildings in id order.
func (c *City) BuildingList() []content.BuildingID {
	out := make([]content.BuildingID, 0, len(c.Buildings))
	for id := range c.Buildings {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildingsByKind returns the constructed buildings of the kind in id order.
func (c *City) BuildingsByKind(k content.Kind) []content.BuildingID {
	var out []content.BuildingID
	for _, id := range c.BuildingList() {
		if content.BuildingByID(id).Kind == k {
			out = append(out, id)
		}
	}
	return out
}

// CountByKind returns how many constructed buildings have the kind.
func (c *City) CountByKind(k content.Kind) int {
	n := 0
	for id := range c.Buildings {
		if content.BuildingByID(id).Kind == k {
			n++
		}
	}
	return n
}

// HasToken reports whether the city owns the progress token.
func (c *City) HasToken(id content.TokenID) bool {
	for _, t := range c.Tokens {
		if t == id {
			return true
		}
	}
	return false
}

func (c *City) wonder(id content.WonderID) *CityWonder {
	for i := range c.Wonders {
		if c.Wonders[i].ID == id {
			return &c.Wonders[i]
		}
	}
	return nil
}

// ConstructedWonders returns how many of the city's wonders are built.
func (c *City) ConstructedWonders() int {
	n := 0
	for _, w := range c.Wonders {
		if w.Constructed {
			n++
		}
	}
	return n
}

// DistinctSymbols returns how many different scientific symbols the city
// has collected.
func (c *City) DistinctSymbols() int {
	n := 0
	for _, count := range c.Symbols {
		if count > 0 {
			n++
		}
	}
	return n
}

// bonus counts the city's units for a coins-per or guild bonus.
func (c *City) bonus(b content.Bonus) int {
	switch b {
	case content.BonusResources:
		return c.CountByKind(content.KindRawMaterials) + c.CountByKind(content.KindManufacturedGoods)
	case content.BonusRawMaterials:
		return c.CountByKind(content.KindRawMaterials)
	case content.BonusManufacturedGoods:
		return c.CountByKind(content.KindManufacturedGoods)
	case content.BonusMilitary:
		return c.CountByKind(content.KindMilitary)
	case content.BonusCommercial:
		return c.CountByKind(content.KindCommercial)
	case content.BonusCivilian:
		return c.CountByKind(content.KindCivilian)
	case content.BonusScience:
		return c.CountByKind(content.KindScientific)
	case content.BonusWonder:
		return c.ConstructedWonders()
	case content.BonusCoin:
		return c.Coins / 3
	}
	return 0
}
