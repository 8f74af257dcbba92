// search.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Component E: the placement search. Enumerates every (start, end)
// alignment the anchors allow, then recursively walks the lexicon
// cell by cell, intersecting the oracle's crossword mask, the
// lexicon's child set and the rack's available letters at every Open
// cell - the three-way intersection that keeps branching in check.
//
// This is a 1D reduction of the Appel & Jacobson algorithm the
// teacher lineage implements in movegen.go: there, ExtendRightNavigator
// walks right from a board anchor square across 30 axes (rows and
// columns) in parallel, checking each square against either a fixed
// board tile or the rack plus a cross-check bitmask computed by the
// DAWG. Here there is exactly one axis (the WordSpec itself), so the
// anchor-square bookkeeping and axis parallelism collapse into a
// single recursive walk per (start, end) alignment, driven directly
// off the oracle (oracle.go) instead of a per-axis cross-check table.

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

// Placement is a realized candidate: the [Start, End) range of
// WordSpec cells it covers, the letter chosen for each cell in that
// range, and whether a blank stood in for each letter.
type Placement struct {
	Start, End int
	Letters    []rune
	Blank      []bool
	// TilesUsed is the number of rack tiles the placement consumed
	// (Fixed cells consume none); a Placement is only ever recorded
	// with TilesUsed > 0.
	TilesUsed int
}

// Word returns the main-line word the placement forms.
func (p *Placement) Word() string {
	return string(p.Letters)
}

// searcher holds the read-only inputs shared by every branch of one
// query's search, so the recursive walk itself only threads the
// per-branch state (cell index, lexicon node, rack, accumulator).
type searcher struct {
	lex    *Lexicon
	spec   WordSpec
	oracle *Oracle
	out    []Placement
	nodes  int
}

// SearchStats reports how much work a Search call did, for the CLI's
// informational summary (§12).
type SearchStats struct {
	NodesVisited int
}

// Search enumerates every Placement satisfying spec §4.E: for each
// (start, end) alignment permitted by the WordSpec's anchors, the
// walk from start to end must trace a terminal lexicon path while
// respecting Fixed cells, the oracle's crossword masks, and the rack.
func Search(lex *Lexicon, q *Query, oracle *Oracle) ([]Placement, SearchStats) {
	s := &searcher{lex: lex, spec: q.Spec, oracle: oracle}
	n := len(q.Spec.Cells)

	startLo, startHi := 0, n
	if q.Spec.AnchorLeft {
		startHi = 0
	}
	endLo, endHi := 0, n
	if q.Spec.AnchorRight {
		endLo = n
	}

	for start := startLo; start <= startHi; start++ {
		lo := endLo
		if start > lo {
			lo = start
		}
		for end := lo; end <= endHi; end++ {
			if end <= start {
				continue
			}
			s.walk(start, end, start, q.Rack, lex.Root(), nil, nil, 0)
		}
	}
	return s.out, SearchStats{NodesVisited: s.nodes}
}

// walk extends a partial match at cell i (having started at start)
// toward end. letters/blanks accumulate the chosen tiles for
// [start, i). tilesUsed counts rack tiles consumed so far.
func (s *searcher) walk(
	start, end, i int,
	rack Rack,
	node *lexNode,
	letters []rune,
	blanks []bool,
	tilesUsed int,
) {
	if node == nil {
		return
	}
	s.nodes++
	if i == end {
		if tilesUsed > 0 && s.lex.Terminal(node) {
			s.out = append(s.out, Placement{
				Start:     start,
				End:       end,
				Letters:   append([]rune(nil), letters...),
				Blank:     append([]bool(nil), blanks...),
				TilesUsed: tilesUsed,
			})
		}
		return
	}

	cell := s.spec.Cells[i]
	if cell.Kind == CellFixed {
		child, ok := s.lex.Step(node, cell.Letter)
		if !ok {
			return
		}
		s.walk(start, end, i+1, rack, child,
			append(letters, cell.Letter), append(blanks, false), tilesUsed)
		return
	}

	// Open or OpenConstrained.
	openIdx := s.oracle.CellIndex[i]
	admissible := s.oracle.Allowed[openIdx] & s.lex.ChildSet(node) & rack.LetterSet()
	if cell.Kind == CellOpenConstrained {
		admissible &= SingleLetterSet(cell.Letter)
	}

	for _, c := range admissible.Runes() {
		child, ok := s.lex.Step(node, c)
		if !ok {
			continue
		}
		if rack.Count(c) > 0 {
			s.walk(start, end, i+1, rack.WithoutLetter(c), child,
				append(letters, c), append(blanks, false), tilesUsed+1)
		}
		if rack.Blanks() > 0 {
			s.walk(start, end, i+1, rack.WithoutBlank(), child,
				append(letters, c), append(blanks, true), tilesUsed+1)
		}
	}
}
