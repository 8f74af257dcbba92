// query.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// This file implements the query model: Rack, Cell, WordSpec,
// Crossword and the Query value type that combines them, together
// with the construction-time validation spec §4.C calls for.
//
// The teacher lineage keeps a player's rack as a RackTiles map plus a
// physical Slots array tied to a 15x15 board (rack.go). There is no
// board here, so Rack is reduced to its multiset essence: a fixed-size
// array of per-letter counts, copied by value so that each recursive
// search branch naturally sees its own decremented view without any
// aliasing - the non-destructive consumption spec §3 requires.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordline

import "fmt"

// blankIndex is the slot in Rack.counts reserved for blank tiles.
const blankIndex = 26

// Rack is a finite multiset of Tiles: 26 letter counts plus a blank
// count. It is a plain value, not a pointer - copying a Rack is the
// whole mechanism by which search branches get an independent view.
type Rack struct {
	counts [27]int
}

// NewRack builds a Rack from a slice of runes, where '?' denotes a
// blank tile. Runes outside a-z/'?' are ignored by this constructor;
// the CLI-facing parser (parse.go) is responsible for rejecting them
// per the InvalidLetterPool error kind.
func NewRack(runes []rune) Rack {
	var r Rack
	for _, c := range runes {
		if c == '?' {
			r.counts[blankIndex]++
			continue
		}
		if b := letterBit(c); b >= 0 {
			r.counts[b]++
		}
	}
	return r
}

// Count returns the number of tiles of the given letter in the rack
// ('?' queries the blank count).
func (r Rack) Count(letter rune) int {
	if letter == '?' {
		return r.counts[blankIndex]
	}
	if b := letterBit(letter); b >= 0 {
		return r.counts[b]
	}
	return 0
}

// Blanks returns the number of blank tiles in the rack.
func (r Rack) Blanks() int {
	return r.counts[blankIndex]
}

// TotalTiles returns the total number of tiles in the rack.
func (r Rack) TotalTiles() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

// IsEmpty reports whether the rack holds no tiles at all.
func (r Rack) IsEmpty() bool {
	return r.TotalTiles() == 0
}

// WithoutLetter returns a copy of the rack with one direct tile of
// letter removed. The caller must have checked Count(letter) > 0.
func (r Rack) WithoutLetter(letter rune) Rack {
	if b := letterBit(letter); b >= 0 {
		r.counts[b]--
	}
	return r
}

// WithoutBlank returns a copy of the rack with one blank removed. The
// caller must have checked Blanks() > 0.
func (r Rack) WithoutBlank() Rack {
	r.counts[blankIndex]--
	return r
}

// LetterSet returns the set of letters directly available in the
// rack, widened to AllLetters if the rack holds a blank - matching
// the "rack_letters" definition in spec §4.E.
func (r Rack) LetterSet() LetterSet {
	if r.counts[blankIndex] > 0 {
		return AllLetters
	}
	var s LetterSet
	for i, n := range r.counts[:26] {
		if n > 0 {
			s = s.Add(rune('a' + i))
		}
	}
	return s
}

// Bonus is the bonus kind annotating an Open or OpenConstrained cell.
type Bonus int

const (
	BonusNone Bonus = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

// Multipliers returns the (letter, word) score multipliers for a bonus.
func (b Bonus) Multipliers() (letterMul, wordMul int) {
	switch b {
	case BonusDoubleLetter:
		return 2, 1
	case BonusTripleLetter:
		return 3, 1
	case BonusDoubleWord:
		return 1, 2
	case BonusTripleWord:
		return 1, 3
	default:
		return 1, 1
	}
}

// CellKind discriminates the three Cell variants.
type CellKind int

const (
	CellOpen CellKind = iota
	CellOpenConstrained
	CellFixed
)

// Cell is a tagged union: Open(bonus) | OpenConstrained(letter, bonus)
// | Fixed(letter). A single struct with a Kind discriminant is used in
// place of dynamic dispatch, per spec §9 ("avoid dynamic dispatch; a
// tagged union suffices").
type Cell struct {
	Kind   CellKind
	Letter rune // meaningful for OpenConstrained and Fixed
	Bonus  Bonus
}

// IsOpen reports whether the cell can receive a newly placed tile
// (true for both Open and OpenConstrained).
func (c Cell) IsOpen() bool {
	return c.Kind == CellOpen || c.Kind == CellOpenConstrained
}

// WordSpec is an ordered sequence of Cells plus the two anchor flags.
type WordSpec struct {
	Cells       []Cell
	AnchorLeft  bool
	AnchorRight bool
}

// OpenCount returns the number of Open/OpenConstrained cells.
func (w WordSpec) OpenCount() int {
	n := 0
	for _, c := range w.Cells {
		if c.IsOpen() {
			n++
		}
	}
	return n
}

// Crossword is the (prefix, suffix) pair declared for one Open cell,
// in left-to-right order of the WordSpec's Open cells.
type Crossword struct {
	Prefix string
	Suffix string
}

// Query bundles a Rack, a WordSpec and its Crosswords (one per Open
// cell, in left-to-right order).
type Query struct {
	Rack       Rack
	Spec       WordSpec
	Crosswords []Crossword
}

// NewQuery validates and constructs a Query per spec §4.C:
//   - the WordSpec must have at least one Open cell;
//   - the crossword count must equal the Open cell count, or be zero
//     (meaning "all unconstrained"), in which case it is expanded here;
//   - every OpenConstrained cell's letter must be suppliable from the
//     rack, counting blanks, treating the set of all such letters as a
//     joint multiset requirement (not checked independently per cell).
func NewQuery(rack Rack, spec WordSpec, crosswords []Crossword) (*Query, error) {
	openCount := spec.OpenCount()
	if openCount == 0 {
		return nil, fmt.Errorf("%w: word specification has no open cells", ErrInvalidWordSpec)
	}
	switch len(crosswords) {
	case 0:
		crosswords = make([]Crossword, openCount)
	case openCount:
		// as given
	default:
		return nil, fmt.Errorf(
			"%w: %d crosswords given for %d open cells",
			ErrCrosswordCountMismatch, len(crosswords), openCount,
		)
	}

	if err := checkRackSufficiency(rack, spec); err != nil {
		return nil, err
	}

	return &Query{Rack: rack, Spec: spec, Crosswords: crosswords}, nil
}

// checkRackSufficiency verifies that the rack can jointly supply every
// OpenConstrained cell's required letter, substituting blanks for any
// shortfall, with each blank used at most once.
func checkRackSufficiency(rack Rack, spec WordSpec) error {
	required := make(map[rune]int)
	for _, c := range spec.Cells {
		if c.Kind == CellOpenConstrained {
			required[c.Letter]++
		}
	}
	blanksNeeded := 0
	for letter, need := range required {
		have := rack.Count(letter)
		if have < need {
			blanksNeeded += need - have
		}
	}
	if blanksNeeded > rack.Blanks() {
		return fmt.Errorf(
			"%w: rack %q cannot supply the letters required by the word specification",
			ErrRackInsufficient, rack.String(),
		)
	}
	return nil
}

// String renders the rack as a letter pool string, '?' for blanks, in
// a-z order for determinism.
func (r Rack) String() string {
	var b []rune
	for i, n := range r.counts[:26] {
		for k := 0; k < n; k++ {
			b = append(b, rune('a'+i))
		}
	}
	for k := 0; k < r.counts[blankIndex]; k++ {
		b = append(b, '?')
	}
	return string(b)
}
