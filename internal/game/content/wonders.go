package content

import (
	"fmt"
	"sort"

	"github.com/openduel/duel-server-go/internal/game/economy"
)

// WonderID identifies a wonder.
type WonderID int

const (
	TheAppianWay WonderID = iota + 1
	CircusMaximus
	TheColossus
	TheGreatLibrary
	TheGreatLighthouse
	TheHangingGardens
	TheMausoleum
	Piraeus
	ThePyramids
	TheSphinx
	TheStatueOfZeus
	TheTempleOfArtemis
	Messe
	StatueOfLiberty
)

// Wonder is one catalog entry.
type Wonder struct {
	ID      WonderID
	Name    string
	Cost    economy.Cost
	Effects []Effect
}

var wonders = map[WonderID]Wonder{
	TheAppianWay: {TheAppianWay, "The Appian Way", cost(0, papyrus, clay, clay, stone, stone),
		[]Effect{Coins(3), Fine(3), PlayAgain(), Points(3)}},
	CircusMaximus: {CircusMaximus, "Circus Maximus", cost(0, glass, wood, stone, stone),
		[]Effect{Destruct(KindManufacturedGoods), WonderShields(1), Points(3)}},
	TheColossus: {TheColossus, "The Colossus", cost(0, clay, clay, clay, glass),
		[]Effect{WonderShields(2), Points(3)}},
	TheGreatLibrary: {TheGreatLibrary, "The Great Library", cost(0, wood, wood, wood, glass, papyrus),
		[]Effect{PickRandomToken(), Points(4)}},
	TheGreatLighthouse: {TheGreatLighthouse, "The Great Lighthouse", cost(0, wood, stone, papyrus, papyrus),
		[]Effect{Discounter(economy.PayScopeGlobal, economy.RawMaterials, 1), Points(4)}},
	TheHangingGardens: {TheHangingGardens, "The Hanging Gardens", cost(0, wood, wood, glass, papyrus),
		[]Effect{Coins(6), PlayAgain(), Points(3)}},
	TheMausoleum: {TheMausoleum, "The Mausoleum", cost(0, clay, clay, glass, glass, papyrus),
		[]Effect{PickDiscardedBuilding(), Points(2)}},
	Piraeus: {Piraeus, "Piraeus", cost(0, wood, wood, stone, clay),
		[]Effect{Discounter(economy.PayScopeGlobal, economy.ManufacturedGoods, 1), PlayAgain(), Points(2)}},
	ThePyramids: {ThePyramids, "The Pyramids", cost(0, papyrus, stone, stone, stone),
		[]Effect{Points(9)}},
	TheSphinx: {TheSphinx, "The Sphinx", cost(0, stone, clay, glass, glass),
		[]Effect{PlayAgain(), Points(6)}},
	TheStatueOfZeus: {TheStatueOfZeus, "The Statue of Zeus", cost(0, stone, wood, clay, papyrus, papyrus),
		[]Effect{Destruct(KindRawMaterials), WonderShields(1), Points(3)}},
	TheTempleOfArtemis: {TheTempleOfArtemis, "The Temple of Artemis", cost(0, wood, stone, glass, papyrus),
		[]Effect{Coins(12), PlayAgain()}},
	Messe: {Messe, "Messe", cost(0, clay, clay, wood, glass, papyrus),
		[]Effect{PickTopLineBuilding(), Points(2)}},
	StatueOfLiberty: {StatueOfLiberty, "Statue of Liberty", cost(0, clay, stone, wood, glass, papyrus),
		[]Effect{PickReturnedBuildings(), Points(5)}},
}

// WonderByID returns the catalog entry for id. Unknown ids are a
// programming error.
func WonderByID(id WonderID) Wonder {
	w, ok := wonders[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown wonder %d", id))
	}
	return w
}

func (id WonderID) String() string {
	if w, ok := wonders[id]; ok {
		return w.Name
	}
	return fmt.Sprintf("Wonder(%d)", int(id))
}

// AllWonders returns every wonder id in catalog order.
func AllWonders() []WonderID {
	out := make([]WonderID, 0, len(wonders))
	for id := range wonders {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
