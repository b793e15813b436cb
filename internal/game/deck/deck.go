// Package deck lays out an age's cards into its pyramid structure and
// tracks which cards are covered, hidden or still available.
//
// A layout template is an ASCII diagram: each 'x' is a card slot and each
// 'g' a guild slot, at a rune column within its row. A slot's supporting
// children are the slots in the next row at column plus or minus one; a
// card can be taken only once both its children are gone. Every other row
// starting from the second is dealt face down, except guild slots which
// stay revealed.
package deck

import (
	"fmt"

	"github.com/openduel/duel-server-go/internal/game/content"
)

const (
	// Size is the number of cards dealt into every age structure.
	Size = 20
	// GuildCount is the number of guild slots in the final age structure.
	GuildCount = 3
)

const layoutAgeI = `
    x x
   x x x
  x x x x
 x x x x x
x x x x x x`

const layoutAgeII = `
x x x x x x
 x x x x x
  x x x x
   x x x
    x x`

const layoutAgeIII = `
    x x
   x x x
  x x x g
   g   x
  x x x x
   x x x
    g x`

var layouts = map[content.Age]string{
	content.AgeI:   layoutAgeI,
	content.AgeII:  layoutAgeII,
	content.AgeIII: layoutAgeIII,
}

type slot struct {
	row   int
	col   int
	guild bool
}

func parseLayout(template string) []slot {
	var slots []slot
	row := 0
	start := 0
	flush := func(line string) {
		for col, r := range line {
			switch r {
			case 'x', 'g':
				slots = append(slots, slot{row: row, col: col, guild: r == 'g'})
			}
		}
	}
	first := true
	for i := 0; i <= len(template); i++ {
		if i == len(template) || template[i] == '\n' {
			line := template[start:i]
			start = i + 1
			if first && line == "" {
				first = false
				continue
			}
			first = false
			flush(line)
			row++
		}
	}
	return slots
}

// Deck is the live card structure of one age.
type Deck struct {
	age      content.Age
	order    []content.BuildingID
	present  map[content.BuildingID]bool
	children map[content.BuildingID][]content.BuildingID
	parents  map[content.BuildingID][]content.BuildingID
	faceDown map[content.BuildingID]bool
	topRow   []content.BuildingID
	dealt    map[content.BuildingID]bool
}

// New deals buildings into the age's structure. The deal must hold exactly
// Size cards, with exactly GuildCount guild cards for the final age and
// none otherwise; guild cards fill the dedicated guild slots in deal
// order, all remaining cards fill the normal slots in deal order.
func New(age content.Age, buildings []content.BuildingID) (*Deck, error) {
	template, ok := layouts[age]
	if !ok {
		return nil, fmt.Errorf("deck: no layout for age %s", age)
	}
	if len(buildings) != Size {
		return nil, fmt.Errorf("deck: age %s deal holds %d cards, want %d", age, len(buildings), Size)
	}

	var guilds, regular []content.BuildingID
	for _, id := range buildings {
		if content.IsGuild(id) {
			guilds = append(guilds, id)
		} else {
			regular = append(regular, id)
		}
	}
	wantGuilds := 0
	if age.IsLast() {
		wantGuilds = GuildCount
	}
	if len(guilds) != wantGuilds {
		return nil, fmt.Errorf("deck: age %s deal holds %d guild cards, want %d", age, len(guilds), wantGuilds)
	}

	slots := parseLayout(template)

	d := &Deck{
		age:      age,
		present:  make(map[content.BuildingID]bool, Size),
		children: make(map[content.BuildingID][]content.BuildingID, Size),
		parents:  make(map[content.BuildingID][]content.BuildingID, Size),
		faceDown: make(map[content.BuildingID]bool),
		dealt:    make(map[content.BuildingID]bool, Size),
	}

	type placed struct {
		id content.BuildingID
		slot
	}
	byPos := make(map[[2]int]placed, Size)
	var cards []placed
	for _, sl := range slots {
		var id content.BuildingID
		if sl.guild {
			id, guilds = guilds[0], guilds[1:]
		} else {
			id, regular = regular[0], regular[1:]
		}
		p := placed{id: id, slot: sl}
		cards = append(cards, p)
		byPos[[2]int{sl.row, sl.col}] = p
	}

	for _, c := range cards {
		d.order = append(d.order, c.id)
		d.present[c.id] = true
		d.dealt[c.id] = true
		if c.row%2 == 1 && !c.guild {
			d.faceDown[c.id] = true
		}
		if c.row == 0 {
			d.topRow = append(d.topRow, c.id)
		}
		for _, dc := range []int{-1, 1} {
			if child, ok := byPos[[2]int{c.row + 1, c.col + dc}]; ok {
				d.children[c.id] = append(d.children[c.id], child.id)
				d.parents[child.id] = append(d.parents[child.id], c.id)
			}
		}
	}
	return d, nil
}

// Playable returns the cards with no remaining supporting children, in
// deal order.
func (d *Deck) Playable() []content.BuildingID {
	var out []content.BuildingID
	for _, id := range d.order {
		if d.present[id] && len(d.children[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Reveal turns every playable face-down card face up.
func (d *Deck) Reveal() {
	for _, id := range d.Playable() {
		delete(d.faceDown, id)
	}
}

// Contains reports whether id is still in the structure.
func (d *Deck) Contains(id content.BuildingID) bool {
	return d.present[id]
}

// FaceDown reports whether id is still hidden.
func (d *Deck) FaceDown(id content.BuildingID) bool {
	return d.faceDown[id]
}

// Pull removes id from the structure, releasing the cards it was
// supporting. Pulling a card that is not present is a programming error;
// callers validate first.
func (d *Deck) Pull(id content.BuildingID) {
	if !d.present[id] {
		panic(fmt.Sprintf("deck: pulling absent card %s", id))
	}
	delete(d.present, id)
	delete(d.faceDown, id)
	for _, parent := range d.parents[id] {
		kept := d.children[parent][:0]
		for _, child := range d.children[parent] {
			if child != id {
				kept = append(kept, child)
			}
		}
		d.children[parent] = kept
	}
}

// Empty reports whether every card has been taken.
func (d *Deck) Empty() bool {
	return len(d.present) == 0
}

// Remaining returns how many cards are still in the structure.
func (d *Deck) Remaining() int {
	return len(d.present)
}

// TopLine returns the revealed surviving cards of the first row, in deal
// order.
func (d *Deck) TopLine() []content.BuildingID {
	var out []content.BuildingID
	for _, id := range d.topRow {
		if d.present[id] && !d.faceDown[id] {
			out = append(out, id)
		}
	}
	return out
}

// Returned lists the age's catalog cards that were left out of the deal,
// in id order. Guild candidates never count as returned.
func (d *Deck) Returned() []content.BuildingID {
	var out []content.BuildingID
	for _, id := range content.BuildingsByAge(d.age) {
		if !d.dealt[id] {
			out = append(out, id)
		}
	}
	return out
}
