package content

import (
	"fmt"
	"sort"

	"github.com/openduel/duel-server-go/internal/game/economy"
)

// TokenID identifies a progress token.
type TokenID int

const (
	Agriculture TokenID = iota + 1
	Architecture
	Economy
	Law
	Masonry
	MathematicsToken
	Philosophy
	Strategy
	Theology
	Urbanism
)

// Token is one catalog entry. Tokens whose behavior is a standing rule of
// the engine (Economy, Strategy, Theology, Urbanism) carry only their
// immediate effects here; the engine checks ownership at the relevant
// decision points.
type Token struct {
	ID      TokenID
	Name    string
	Effects []Effect
}

var tokens = map[TokenID]Token{
	Agriculture:  {Agriculture, "Agriculture", []Effect{Coins(6), Points(4)}},
	Architecture: {Architecture, "Architecture", []Effect{Discounter(economy.PayScopeWonders, economy.AllResources, 2)}},
	Economy:      {Economy, "Economy", nil},
	Law:          {Law, "Law", []Effect{Science(SymbolLaw)}},
	Masonry:      {Masonry, "Masonry", []Effect{Discounter(economy.PayScopeCivilian, economy.AllResources, 2)}},
	MathematicsToken: {MathematicsToken, "Mathematics",
		[]Effect{Mathematics()}},
	Philosophy: {Philosophy, "Philosophy", []Effect{Points(7)}},
	Strategy:   {Strategy, "Strategy", nil},
	Theology:   {Theology, "Theology", nil},
	Urbanism:   {Urbanism, "Urbanism", []Effect{Coins(6)}},
}

// AllTokens returns every token id in catalog order.
func AllTokens() []TokenID {
	out := make([]TokenID, 0, len(tokens))
	for id := range tokens {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TokenByID returns the catalog entry for id. Unknown ids are a
// programming error.
func TokenByID(id TokenID) Token {
	t, ok := tokens[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown token %d", id))
	}
	return t
}

func (id TokenID) String() string {
	if t, ok := tokens[id]; ok {
		return t.Name
	}
	return fmt.Sprintf("Token(%d)", int(id))
}
