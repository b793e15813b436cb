package game

import (
	"math/rand"

	"github.com/openduel/duel-server-go/internal/game/content"
	"github.com/openduel/duel-server-go/internal/game/deck"
)

// RandomSetup draws a legal Setup from the full catalog using the
// supplied randomness source.
func RandomSetup(rng *rand.Rand) Setup {
	wonders := shuffled(rng, content.AllWonders())

	tokens := shuffled(rng, content.AllTokens())

	decks := make(map[content.Age][]content.BuildingID, len(content.Ages))
	for _, age := range content.Ages {
		pool := shuffled(rng, content.BuildingsByAge(age))
		want := deck.Size
		if age.IsLast() {
			want = deck.Size - deck.GuildCount
		}
		deal := pool[:want:want]
		if age.IsLast() {
			guilds := shuffled(rng, content.GuildBuildings())
			deal = shuffled(rng, append(deal, guilds[:deck.GuildCount]...))
		}
		decks[age] = deal
	}

	return Setup{
		Wonders: wonders[:WonderPoolSize],
		Tokens:  tokens,
		Decks:   decks,
	}
}

func shuffled[T any](rng *rand.Rand, in []T) []T {
	out := append([]T(nil), in...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
