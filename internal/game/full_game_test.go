package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openduel/duel-server-go/internal/game/content"
)

// TestFullGameReplay drives a complete recorded duel through every phase:
// the wonder draft, all three ages, chained extra turns, board and
// discard picks, the returned-cards pick, trading credits from the
// Economy token and the final civilian scoring.
func TestFullGameReplay(t *testing.T) {
	setup := Setup{
		Wonders: []content.WonderID{
			content.TheHangingGardens,
			content.TheTempleOfArtemis,
			content.TheColossus,
			content.Messe,
			content.ThePyramids,
			content.StatueOfLiberty,
			content.TheMausoleum,
			content.TheSphinx,
		},
		Tokens: []content.TokenID{
			content.Economy,
			content.Agriculture,
			content.Philosophy,
			content.Theology,
			content.Law,
			content.Urbanism,
			content.Strategy,
			content.Masonry,
			content.MathematicsToken,
			content.Architecture,
		},
		Decks: map[content.Age][]content.BuildingID{
			content.AgeI: {
				content.Palisade,
				content.Theater,
				content.Tavern,
				content.Stable,
				content.Altar,
				content.Workshop,
				content.ClayReserve,
				content.GlassWorks,
				content.LoggingCamp,
				content.LumberYard,
				content.Baths,
				content.Quarry,
				content.ClayPit,
				content.ClayPool,
				content.Scriptorium,
				content.Garrison,
				content.StonePit,
				content.WoodReserve,
				content.Pharmacist,
				content.StoneReserve,
			},
			content.AgeII: {
				content.Dispensary,
				content.CustomHouse,
				content.CourtHouse,
				content.Caravansery,
				content.GlassBlower,
				content.BrickYard,
				content.School,
				content.Laboratory,
				content.Aqueduct,
				content.ArcheryRange,
				content.ParadeGround,
				content.Brewery,
				content.Statue,
				content.HorseBreeders,
				content.ShelfQuarry,
				content.Library,
				content.Walls,
				content.SawMill,
				content.Barracks,
				content.DryingRoom,
			},
			content.AgeIII: {
				content.Port,
				content.Academy,
				content.Obelisk,
				content.Observatory,
				content.Fortifications,
				content.Palace,
				content.Senate,
				content.Armory,
				content.MagistratesGuild,
				content.MerchantsGuild,
				content.SiegeWorkshop,
				content.ChamberOfCommerce,
				content.Arsenal,
				content.Pretorium,
				content.Arena,
				content.Lighthouse,
				content.Gardens,
				content.Pantheon,
				content.MoneyLendersGuild,
				content.TownHall,
			},
		},
	}

	actions := []Action{
		Prepare{Setup: setup},
		PickWonder{Wonder: content.TheTempleOfArtemis},
		PickWonder{Wonder: content.TheHangingGardens},
		PickWonder{Wonder: content.TheColossus},
		PickWonder{Wonder: content.Messe},
		PickWonder{Wonder: content.TheSphinx},
		PickWonder{Wonder: content.StatueOfLiberty},
		PickWonder{Wonder: content.TheMausoleum},
		PickWonder{Wonder: content.ThePyramids},
		ConstructBuilding{Building: content.WoodReserve},
		ConstructBuilding{Building: content.StoneReserve},
		ConstructBuilding{Building: content.Scriptorium},
		ConstructBuilding{Building: content.StonePit},
		ConstructBuilding{Building: content.Quarry},
		DiscardBuilding{Building: content.Garrison},
		ConstructBuilding{Building: content.Pharmacist},
		ConstructBuilding{Building: content.ClayPool},
		ConstructBuilding{Building: content.LumberYard},
		ConstructBuilding{Building: content.Baths},
		DiscardBuilding{Building: content.ClayPit},
		ConstructBuilding{Building: content.LoggingCamp},
		ConstructBuilding{Building: content.GlassWorks},
		ConstructBuilding{Building: content.Altar},
		ConstructBuilding{Building: content.Workshop},
		DiscardBuilding{Building: content.ClayReserve},
		ConstructBuilding{Building: content.Tavern},
		ConstructBuilding{Building: content.Stable},
		ConstructBuilding{Building: content.Theater},
		ConstructBuilding{Building: content.Palisade},
		SelectWhoBeginsTheNextAge{Player: Player1},
		ConstructBuilding{Building: content.DryingRoom},
		ConstructBuilding{Building: content.SawMill},
		ConstructBuilding{Building: content.ShelfQuarry},
		DiscardBuilding{Building: content.ParadeGround},
		ConstructBuilding{Building: content.BrickYard},
		ConstructBuilding{Building: content.Barracks},
		ConstructBuilding{Building: content.Library},
		PickBoardToken{Token: content.Theology},
		ConstructBuilding{Building: content.Walls},
		ConstructBuilding{Building: content.Brewery},
		DiscardBuilding{Building: content.HorseBreeders},
		ConstructWonder{Wonder: content.Messe, Building: content.Statue},
		PickTopLineBuilding{Building: content.Dispensary},
		PickBoardToken{Token: content.Economy},
		ConstructBuilding{Building: content.Laboratory},
		PickBoardToken{Token: content.Agriculture},
		ConstructBuilding{Building: content.ArcheryRange},
		ConstructBuilding{Building: content.Aqueduct},
		ConstructBuilding{Building: content.GlassBlower},
		ConstructBuilding{Building: content.School},
		DiscardBuilding{Building: content.CourtHouse},
		ConstructBuilding{Building: content.Caravansery},
		ConstructBuilding{Building: content.CustomHouse},
		SelectWhoBeginsTheNextAge{Player: Player1},
		ConstructWonder{Wonder: content.TheMausoleum, Building: content.MoneyLendersGuild},
		PickDiscardedBuilding{Building: content.ParadeGround},
		ConstructBuilding{Building: content.Lighthouse},
		ConstructBuilding{Building: content.ChamberOfCommerce},
		ConstructBuilding{Building: content.TownHall},
		ConstructWonder{Wonder: content.ThePyramids, Building: content.Gardens},
		ConstructBuilding{Building: content.Arsenal},
		DiscardBuilding{Building: content.Pantheon},
		DiscardBuilding{Building: content.Pretorium},
		ConstructBuilding{Building: content.MerchantsGuild},
		ConstructWonder{Wonder: content.StatueOfLiberty, Building: content.Senate},
		PickReturnedBuildings{First: content.Study, Second: content.Circus},
		ConstructWonder{Wonder: content.TheTempleOfArtemis, Building: content.Palace},
		ConstructBuilding{Building: content.Obelisk},
		ConstructBuilding{Building: content.Arena},
		ConstructBuilding{Building: content.SiegeWorkshop},
		ConstructBuilding{Building: content.MagistratesGuild},
		ConstructBuilding{Building: content.Armory},
		ConstructBuilding{Building: content.Observatory},
		ConstructBuilding{Building: content.Fortifications},
		ConstructBuilding{Building: content.Port},
		ConstructBuilding{Building: content.Academy},
		PickBoardToken{Token: content.Philosophy},
	}

	s, err := FromActions("Athens", "Rome", actions...)
	require.NoError(t, err)

	require.True(t, s.Over())
	require.NotNil(t, s.Victory())
	assert.Equal(t, Player1, s.Victory().Winner)
	assert.Equal(t, VictoryCivilian, s.Victory().Kind)

	p1, p2 := s.City(Player1), s.City(Player2)

	assert.Equal(t, 33, p1.Coins)
	assert.Equal(t, Score{
		Civilian:   20,
		Science:    13,
		Commercial: 6,
		Guilds:     0,
		Wonders:    9,
		Tokens:     11,
		Coins:      11,
		Military:   0,
		Total:      70,
	}, p1.Score)

	assert.Equal(t, 19, p2.Coins)
	assert.Equal(t, Score{
		Civilian:   6,
		Science:    2,
		Commercial: 9,
		Guilds:     10,
		Wonders:    9,
		Tokens:     0,
		Coins:      6,
		Military:   0,
		Total:      42,
	}, p2.Score)
}
