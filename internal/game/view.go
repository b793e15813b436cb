package game

import (
	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/economy"
)

// CardView describes one building visible to clients.
type CardView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WonderView describes one wonder in a city.
type WonderView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Constructed bool   `json:"constructed"`
}

// CityView is the client-visible part of one city.
type CityView struct {
	Name           string         `json:"name"`
	Coins          int            `json:"coins"`
	Stock          map[string]int `json:"stock"`
	Buildings      []CardView     `json:"buildings"`
	Wonders        []WonderView   `json:"wonders"`
	Tokens         []string       `json:"tokens"`
	MilitaryPos    int            `json:"military_pos"`
	Score          Score          `json:"score"`
	BuildingPrices map[int]int    `json:"building_prices"`
	WonderPrices   map[int]int    `json:"wonder_prices"`
}

// DeckView is the visible shape of the card structure.
type DeckView struct {
	Remaining int        `json:"remaining"`
	Playable  []CardView `json:"playable"`
	TopLine   []CardView `json:"top_line"`
}

// VictoryView reports the game result.
type VictoryView struct {
	Winner int    `json:"winner"`
	Kind   string `json:"kind"`
}

// View is a complete client-facing snapshot of the game. It contains
// only information both players are entitled to see.
type View struct {
	Age          string       `json:"age"`
	Phase        string       `json:"phase"`
	Turn         int          `json:"turn"`
	Starts       int          `json:"starts"`
	Cities       [2]CityView  `json:"cities"`
	Deck         *DeckView    `json:"deck,omitempty"`
	DraftPool    []CardView   `json:"draft_pool,omitempty"`
	BoardTokens []string `json:"board_tokens"`
	// The candidates of the currently open interactive pick, if any.
	TokenOffer    []string     `json:"token_offer,omitempty"`
	BuildingOffer []CardView   `json:"building_offer,omitempty"`
	Discarded     []CardView   `json:"discarded"`
	DestructKind  string       `json:"destruct_kind,omitempty"`
	Victory      *VictoryView `json:"victory,omitempty"`
}

// Snapshot renders the current state for clients.
func (s *State) Snapshot() View {
	v := View{
		Age:         s.age.String(),
		Phase:       s.phase.String(),
		Turn:        int(s.turn),
		Starts:      int(s.starts),
		BoardTokens: tokenNameList(s.boardTokens),
		Discarded:   buildingCards(s.discarded),
	}

	for p := Player1; p <= Player2; p++ {
		v.Cities[p] = cityView(s.cities[p])
	}

	if s.deck != nil {
		v.Deck = &DeckView{
			Remaining: s.deck.Remaining(),
			Playable:  buildingCards(s.deck.Playable()),
			TopLine:   buildingCards(s.deck.TopLine()),
		}
	}

	for _, id := range s.draftPool {
		v.DraftPool = append(v.DraftPool, CardView{ID: int(id), Name: id.String()})
	}
	v.TokenOffer = tokenNameList(s.tokenOffer)
	v.BuildingOffer = buildingCards(s.buildingOffer)
	if s.phase == PhaseDestructBuildingSelection {
		v.DestructKind = s.destruct.String()
	}
	if s.victory != nil {
		v.Victory = &VictoryView{
			Winner: int(s.victory.Winner),
			Kind:   s.victory.Kind.String(),
		}
	}
	return v
}

func cityView(c *City) CityView {
	cv := CityView{
		Name:           c.Name,
		Coins:          c.Coins,
		Stock:          make(map[string]int, len(c.Stock)),
		Buildings:      buildingCards(c.BuildingList()),
		Tokens:         tokenNameList(c.Tokens),
		MilitaryPos:    c.Track.Pos,
		Score:          c.Score,
		BuildingPrices: make(map[int]int, len(c.BuildingPrices)),
		WonderPrices:   make(map[int]int, len(c.WonderPrices)),
	}
	for _, r := range economy.AllResources {
		if n := c.Stock[r]; n > 0 {
			cv.Stock[r.String()] = n
		}
	}
	for _, w := range c.Wonders {
		cv.Wonders = append(cv.Wonders, WonderView{
			ID:          int(w.ID),
			Name:        w.ID.String(),
			Constructed: w.Constructed,
		})
	}
	for id, price := range c.BuildingPrices {
		cv.BuildingPrices[int(id)] = price
	}
	for id, price := range c.WonderPrices {
		cv.WonderPrices[int(id)] = price
	}
	return cv
}

func buildingCards(ids []content.BuildingID) []CardView {
	cards := make([]CardView, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, CardView{ID: int(id), Name: id.String()})
	}
	return cards
}

func tokenNameList(ids []content.TokenID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return names
}
