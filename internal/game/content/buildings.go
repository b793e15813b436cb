package content

import (
	"fmt"
	"sort"

	"github.com/openduel/duel-server-go/internal/game/economy"
)

// BuildingID identifies a building. The numeric blocks group buildings by
// age: 1xx age I, 2xx age II, 3xx age III, 4xx guilds.
type BuildingID int

const (
	LumberYard BuildingID = iota + 100
	LoggingCamp
	ClayPool
	ClayPit
	Quarry
	StonePit
	GlassWorks
	Press
	GuardTower
	Workshop
	Apothecary
	StoneReserve
	ClayReserve
	WoodReserve
	Stable
	Garrison
	Palisade
	Scriptorium
	Pharmacist
	Theater
	Altar
	Baths
	Tavern
)

const (
	SawMill BuildingID = iota + 200
	BrickYard
	ShelfQuarry
	GlassBlower
	DryingRoom
	Walls
	Forum
	Caravansery
	CustomHouse
	CourtHouse
	HorseBreeders
	Barracks
	ArcheryRange
	ParadeGround
	Library
	Dispensary
	School
	Laboratory
	Statue
	Temple
	Aqueduct
	Rostrum
	Brewery
)

const (
	Arsenal BuildingID = iota + 300
	Pretorium
	Academy
	Study
	ChamberOfCommerce
	Port
	Armory
	Palace
	TownHall
	Obelisk
	Fortifications
	SiegeWorkshop
	Circus
	University
	Observatory
	Gardens
	Pantheon
	Senate
	Lighthouse
	Arena
)

const (
	MerchantsGuild BuildingID = iota + 400
	ShipOwnersGuild
	BuildersGuild
	MagistratesGuild
	ScientistsGuild
	MoneyLendersGuild
	TacticiansGuild
)

// Building is one catalog entry.
type Building struct {
	ID      BuildingID
	Name    string
	Age     Age
	Kind    Kind
	Cost    economy.Cost
	Effects []Effect
}

var (
	clay    = economy.Clay
	wood    = economy.Wood
	stone   = economy.Stone
	glass   = economy.Glass
	papyrus = economy.Papyrus
)

var buildings = map[BuildingID]Building{
	// Age I
	LumberYard:  {LumberYard, "Lumber Yard", AgeI, KindRawMaterials, free, []Effect{Produce(wood, 1)}},
	LoggingCamp: {LoggingCamp, "Logging Camp", AgeI, KindRawMaterials, cost(1), []Effect{Produce(wood, 1)}},
	ClayPool:    {ClayPool, "Clay Pool", AgeI, KindRawMaterials, free, []Effect{Produce(clay, 1)}},
	ClayPit:     {ClayPit, "Clay Pit", AgeI, KindRawMaterials, cost(1), []Effect{Produce(clay, 1)}},
	Quarry:      {Quarry, "Quarry", AgeI, KindRawMaterials, free, []Effect{Produce(stone, 1)}},
	StonePit:    {StonePit, "Stone Pit", AgeI, KindRawMaterials, cost(1), []Effect{Produce(stone, 1)}},
	GlassWorks:  {GlassWorks, "Glassworks", AgeI, KindManufacturedGoods, cost(1), []Effect{Produce(glass, 1)}},
	Press:       {Press, "Press", AgeI, KindManufacturedGoods, cost(1), []Effect{Produce(papyrus, 1)}},
	GuardTower:  {GuardTower, "Guard Tower", AgeI, KindMilitary, free, []Effect{Shields(1)}},
	Workshop:    {Workshop, "Workshop", AgeI, KindScientific, cost(0, papyrus), []Effect{Science(SymbolCompass), Points(1)}},
	Apothecary:  {Apothecary, "Apothecary", AgeI, KindScientific, cost(0, glass), []Effect{Science(SymbolWheel), Points(1)}},
	StoneReserve: {StoneReserve, "Stone Reserve", AgeI, KindCommercial, cost(3),
		[]Effect{FixPrice(stone), DiscardRewardBonus()}},
	ClayReserve: {ClayReserve, "Clay Reserve", AgeI, KindCommercial, cost(3),
		[]Effect{FixPrice(clay), DiscardRewardBonus()}},
	WoodReserve: {WoodReserve, "Wood Reserve", AgeI, KindCommercial, cost(3),
		[]Effect{FixPrice(wood), DiscardRewardBonus()}},
	Stable:      {Stable, "Stable", AgeI, KindMilitary, cost(0, wood), []Effect{Shields(1), Chain(HorseBreeders)}},
	Garrison:    {Garrison, "Garrison", AgeI, KindMilitary, cost(0, clay), []Effect{Shields(1), Chain(Barracks)}},
	Palisade:    {Palisade, "Palisade", AgeI, KindMilitary, cost(2), []Effect{Shields(1), Chain(Fortifications)}},
	Scriptorium: {Scriptorium, "Scriptorium", AgeI, KindScientific, cost(2), []Effect{Science(SymbolWriting), Chain(Library)}},
	Pharmacist:  {Pharmacist, "Pharmacist", AgeI, KindScientific, cost(2), []Effect{Science(SymbolMortar), Chain(Dispensary)}},
	Theater:     {Theater, "Theater", AgeI, KindCivilian, free, []Effect{Points(3), Chain(Statue)}},
	Altar:       {Altar, "Altar", AgeI, KindCivilian, free, []Effect{Points(3), Chain(Temple)}},
	Baths:       {Baths, "Baths", AgeI, KindCivilian, cost(0, stone), []Effect{Points(3), Chain(Aqueduct)}},
	Tavern:      {Tavern, "Tavern", AgeI, KindCommercial, free, []Effect{Coins(4), Chain(Lighthouse), DiscardRewardBonus()}},

	// Age II
	SawMill:     {SawMill, "Sawmill", AgeII, KindRawMaterials, cost(2), []Effect{Produce(wood, 2)}},
	BrickYard:   {BrickYard, "Brickyard", AgeII, KindRawMaterials, cost(2), []Effect{Produce(clay, 2)}},
	ShelfQuarry: {ShelfQuarry, "Shelf Quarry", AgeII, KindRawMaterials, cost(2), []Effect{Produce(stone, 2)}},
	GlassBlower: {GlassBlower, "Glassblower", AgeII, KindManufacturedGoods, free, []Effect{Produce(glass, 1)}},
	DryingRoom:  {DryingRoom, "Drying Room", AgeII, KindManufacturedGoods, free, []Effect{Produce(papyrus, 1)}},
	Walls:       {Walls, "Walls", AgeII, KindMilitary, cost(0, stone, stone), []Effect{Shields(2)}},
	Forum: {Forum, "Forum", AgeII, KindCommercial, cost(3, clay),
		[]Effect{Discounter(economy.PayScopeGlobal, economy.ManufacturedGoods, 1), DiscardRewardBonus()}},
	Caravansery: {Caravansery, "Caravansery", AgeII, KindCommercial, cost(2, glass, papyrus),
		[]Effect{Discounter(economy.PayScopeGlobal, economy.RawMaterials, 1), DiscardRewardBonus()}},
	CustomHouse: {CustomHouse, "Custom House", AgeII, KindCommercial, cost(4),
		[]Effect{FixPrice(papyrus, glass), DiscardRewardBonus()}},
	CourtHouse:    {CourtHouse, "Courthouse", AgeII, KindCivilian, cost(0, wood, wood, glass), []Effect{Points(5)}},
	HorseBreeders: {HorseBreeders, "Horse Breeders", AgeII, KindMilitary, cost(0, clay, wood), []Effect{Shields(1)}},
	Barracks:      {Barracks, "Barracks", AgeII, KindMilitary, cost(3), []Effect{Shields(1)}},
	ArcheryRange: {ArcheryRange, "Archery Range", AgeII, KindMilitary, cost(0, stone, wood, papyrus),
		[]Effect{Shields(2), Chain(SiegeWorkshop)}},
	ParadeGround: {ParadeGround, "Parade Ground", AgeII, KindMilitary, cost(0, clay, clay, glass),
		[]Effect{Shields(2), Chain(Circus)}},
	Library: {Library, "Library", AgeII, KindScientific, cost(0, stone, wood, glass),
		[]Effect{Science(SymbolWriting), Points(2)}},
	Dispensary: {Dispensary, "Dispensary", AgeII, KindScientific, cost(0, clay, clay, stone),
		[]Effect{Science(SymbolMortar), Points(2)}},
	School: {School, "School", AgeII, KindScientific, cost(0, wood, papyrus, papyrus),
		[]Effect{Science(SymbolWheel), Points(1), Chain(University)}},
	Laboratory: {Laboratory, "Laboratory", AgeII, KindScientific, cost(0, wood, glass, glass),
		[]Effect{Science(SymbolCompass), Points(1), Chain(Observatory)}},
	Statue:   {Statue, "Statue", AgeII, KindCivilian, cost(0, clay, clay), []Effect{Points(4), Chain(Gardens)}},
	Temple:   {Temple, "Temple", AgeII, KindCivilian, cost(0, wood, papyrus), []Effect{Points(4), Chain(Pantheon)}},
	Aqueduct: {Aqueduct, "Aqueduct", AgeII, KindCivilian, cost(0, stone, stone, stone), []Effect{Points(5)}},
	Rostrum:  {Rostrum, "Rostrum", AgeII, KindCivilian, cost(0, stone, wood), []Effect{Points(4), Chain(Senate)}},
	Brewery:  {Brewery, "Brewery", AgeII, KindCommercial, free, []Effect{Coins(6), Chain(Arena), DiscardRewardBonus()}},

	// Age III
	Arsenal:   {Arsenal, "Arsenal", AgeIII, KindMilitary, cost(0, clay, clay, clay, wood, wood), []Effect{Shields(3)}},
	Pretorium: {Pretorium, "Pretorium", AgeIII, KindMilitary, cost(8), []Effect{Shields(3)}},
	Academy: {Academy, "Academy", AgeIII, KindScientific, cost(0, stone, wood, glass, glass),
		[]Effect{Science(SymbolSundial), Points(3)}},
	Study: {Study, "Study", AgeIII, KindScientific, cost(0, wood, wood, glass, papyrus),
		[]Effect{Science(SymbolSundial), Points(3)}},
	ChamberOfCommerce: {ChamberOfCommerce, "Chamber of Commerce", AgeIII, KindCommercial, cost(0, papyrus, papyrus),
		[]Effect{CoinsFor(3, BonusManufacturedGoods), Points(3), DiscardRewardBonus()}},
	Port: {Port, "Port", AgeIII, KindCommercial, cost(0, wood, glass, papyrus),
		[]Effect{CoinsFor(2, BonusRawMaterials), Points(3), DiscardRewardBonus()}},
	Armory: {Armory, "Armory", AgeIII, KindCommercial, cost(0, stone, stone, glass),
		[]Effect{CoinsFor(1, BonusMilitary), Points(3), DiscardRewardBonus()}},
	Palace: {Palace, "Palace", AgeIII, KindCivilian, cost(0, clay, stone, wood, glass, glass), []Effect{Points(7)}},
	TownHall: {TownHall, "Town Hall", AgeIII, KindCivilian, cost(0, stone, stone, stone, wood, wood),
		[]Effect{Points(7)}},
	Obelisk: {Obelisk, "Obelisk", AgeIII, KindCivilian, cost(0, stone, stone, glass), []Effect{Points(5)}},
	Fortifications: {Fortifications, "Fortifications", AgeIII, KindMilitary, cost(0, stone, stone, clay, papyrus),
		[]Effect{Shields(2)}},
	SiegeWorkshop: {SiegeWorkshop, "Siege Workshop", AgeIII, KindMilitary, cost(0, wood, wood, wood, glass),
		[]Effect{Shields(2)}},
	Circus: {Circus, "Circus", AgeIII, KindMilitary, cost(0, clay, clay, stone, stone), []Effect{Shields(2)}},
	University: {University, "University", AgeIII, KindScientific, cost(0, clay, glass, papyrus),
		[]Effect{Science(SymbolAstrology), Points(2)}},
	Observatory: {Observatory, "Observatory", AgeIII, KindScientific, cost(0, stone, papyrus, papyrus),
		[]Effect{Science(SymbolAstrology), Points(2)}},
	Gardens:  {Gardens, "Gardens", AgeIII, KindCivilian, cost(0, clay, clay, wood, wood), []Effect{Points(6)}},
	Pantheon: {Pantheon, "Pantheon", AgeIII, KindCivilian, cost(0, clay, wood, papyrus, papyrus), []Effect{Points(6)}},
	Senate:   {Senate, "Senate", AgeIII, KindCivilian, cost(0, clay, clay, stone, papyrus), []Effect{Points(5)}},
	Lighthouse: {Lighthouse, "Lighthouse", AgeIII, KindCommercial, cost(0, clay, clay, glass),
		[]Effect{CoinsFor(1, BonusCommercial), Points(3), DiscardRewardBonus()}},
	Arena: {Arena, "Arena", AgeIII, KindCommercial, cost(0, clay, stone, wood),
		[]Effect{CoinsFor(2, BonusWonder), Points(3), DiscardRewardBonus()}},

	// Guilds (dealt into the age III structure)
	MerchantsGuild: {MerchantsGuild, "Merchants Guild", AgeIII, KindGuild, cost(0, clay, wood, glass, papyrus),
		[]Effect{Guild(BonusCommercial, 1, 1)}},
	ShipOwnersGuild: {ShipOwnersGuild, "Shipowners Guild", AgeIII, KindGuild, cost(0, clay, stone, glass, papyrus),
		[]Effect{Guild(BonusResources, 1, 1)}},
	BuildersGuild: {BuildersGuild, "Builders Guild", AgeIII, KindGuild, cost(0, stone, stone, clay, wood, glass),
		[]Effect{Guild(BonusWonder, 2, 0)}},
	MagistratesGuild: {MagistratesGuild, "Magistrates Guild", AgeIII, KindGuild, cost(0, wood, wood, clay, papyrus),
		[]Effect{Guild(BonusCivilian, 1, 1)}},
	ScientistsGuild: {ScientistsGuild, "Scientists Guild", AgeIII, KindGuild, cost(0, clay, clay, wood, wood),
		[]Effect{Guild(BonusScience, 1, 1)}},
	MoneyLendersGuild: {MoneyLendersGuild, "Moneylenders Guild", AgeIII, KindGuild, cost(0, stone, stone, wood, wood),
		[]Effect{Guild(BonusCoin, 1, 0)}},
	TacticiansGuild: {TacticiansGuild, "Tacticians Guild", AgeIII, KindGuild, cost(0, stone, stone, clay, papyrus),
		[]Effect{Guild(BonusMilitary, 1, 1)}},
}

// BuildingByID returns the catalog entry for id. Unknown ids are a
// programming error.
func BuildingByID(id BuildingID) Building {
	b, ok := buildings[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown building %d", id))
	}
	return b
}

func (id BuildingID) String() string {
	if b, ok := buildings[id]; ok {
		return b.Name
	}
	return fmt.Sprintf("Building(%d)", int(id))
}

// IsGuild reports whether id is a guild card.
func IsGuild(id BuildingID) bool {
	return BuildingByID(id).Kind == KindGuild
}

// BuildingsByAge returns all non-guild catalog buildings of the age, in id
// order. Guilds are listed separately by GuildBuildings.
func BuildingsByAge(age Age) []BuildingID {
	var out []BuildingID
	for id, b := range buildings {
		if b.Age == age && b.Kind != KindGuild {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GuildBuildings returns every guild card in id order.
func GuildBuildings() []BuildingID {
	var out []BuildingID
	for id, b := range buildings {
		if b.Kind == KindGuild {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
