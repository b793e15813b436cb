// Package military implements the shared conflict track between the two
// cities. Each city owns one end of the track; a single pawn position is
// represented as the pair of per-city advances, at most one of which is
// non-zero at any time.
package military

// CapitalPos is the track position that ends the game by military supremacy.
const CapitalPos = 9

// Zone is a contiguous stretch of the conflict track. Points score for the
// city whose pawn sits in the zone; Fine is the one-time coin penalty the
// opposing city pays when the pawn first enters the zone.
type Zone struct {
	Start  int
	Points int
	Fine   int
}

// Zones lists the track zones outward from the neutral position.
var Zones = [4]Zone{
	{Start: 0, Points: 0, Fine: 0},
	{Start: 1, Points: 2, Fine: 0},
	{Start: 3, Points: 5, Fine: 2},
	{Start: 6, Points: 10, Fine: 5},
}

// Track is one city's side of the conflict pawn.
type Track struct {
	// Pos is how far the pawn has advanced toward the opposing capital.
	Pos int
	// MaxZone is the deepest zone index ever entered, so each zone fine
	// is charged at most once.
	MaxZone int
}

// ZoneIndex returns the index of the zone containing the current position.
func (t *Track) ZoneIndex() int {
	for i := len(Zones) - 1; i >= 0; i-- {
		if t.Pos >= Zones[i].Start {
			return i
		}
	}
	return 0
}

// Points returns the victory points of the currently occupied zone.
func (t *Track) Points() int {
	return Zones[t.ZoneIndex()].Points
}

// Advance moves the pawn power steps toward the opposing capital. Steps
// first cancel the opponent's advance, with any remainder advancing this
// track, clamped at the capital. It returns the one-time coin fine the
// opponent owes for the deepest newly entered zone and whether the
// capital was reached.
func (t *Track) Advance(enemy *Track, power int) (fine int, supremacy bool) {
	if power <= 0 {
		return 0, false
	}
	if enemy.Pos > 0 {
		if enemy.Pos >= power {
			enemy.Pos -= power
			return 0, false
		}
		power -= enemy.Pos
		enemy.Pos = 0
	}

	t.Pos += power
	if t.Pos >= CapitalPos {
		t.Pos = CapitalPos
		return 0, true
	}

	if zone := t.ZoneIndex(); zone > t.MaxZone {
		t.MaxZone = zone
		fine = Zones[zone].Fine
	}
	return fine, false
}
