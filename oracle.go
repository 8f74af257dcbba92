// oracle.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Component D: the crossword oracle. For each Open cell of a query's
// WordSpec, precomputes the set of letters that legally complete its
// declared crossword and the crossword's fixed score contribution, so
// the placement search (search.go) never has to consult the lexicon
// for a crossword check - an O(1) mask test replaces it, directly
// following the "moves the crossword legality test out of the inner
// search" rationale of the teacher lineage's own DAWG.CrossSet
// (dawg.go), generalized from a 2D board's cross-check to an arbitrary
// declared (prefix, suffix) pair.

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

// Oracle holds, for each Open cell of a WordSpec (indexed in
// left-to-right order over just the Open cells, matching the
// Crosswords slice), the precomputed legality mask and score
// contribution of that cell's crossword.
type Oracle struct {
	// Allowed[i] is the set of letters that legally complete the
	// crossword declared for the i-th Open cell.
	Allowed []LetterSet
	// CrossBaseScore[i] is the sum of the letter values of the i-th
	// Open cell's crossword prefix and suffix.
	CrossBaseScore []int
	// CrossHas[i] is true iff the i-th Open cell has a nonempty
	// crossword to score.
	CrossHas []bool
	// CellIndex[c] is the index into Allowed/CrossBaseScore/CrossHas
	// for the Open cell at position c of the WordSpec, or -1 if cell
	// c is Fixed. It lets the placement search go from "cell position
	// in the spec" to "which crossword applies here" without
	// recounting Open cells on every step.
	CellIndex []int
}

// BuildOracle precomputes an Oracle for q against lex. len(q.Crosswords)
// must equal q.Spec.OpenCount() (NewQuery guarantees this).
func BuildOracle(lex *Lexicon, q *Query) *Oracle {
	n := len(q.Crosswords)
	o := &Oracle{
		Allowed:        make([]LetterSet, n),
		CrossBaseScore: make([]int, n),
		CrossHas:       make([]bool, n),
		CellIndex:      make([]int, len(q.Spec.Cells)),
	}
	openIdx := 0
	for c, cell := range q.Spec.Cells {
		if cell.IsOpen() {
			o.CellIndex[c] = openIdx
			openIdx++
		} else {
			o.CellIndex[c] = -1
		}
	}
	for i, cw := range q.Crosswords {
		prefix := []rune(cw.Prefix)
		suffix := []rune(cw.Suffix)
		if len(prefix) == 0 && len(suffix) == 0 {
			o.Allowed[i] = AllLetters
			continue
		}
		o.CrossHas[i] = true
		o.Allowed[i] = lex.CrossLetters(prefix, suffix)
		base := 0
		for _, r := range prefix {
			base += LetterValue(r)
		}
		for _, r := range suffix {
			base += LetterValue(r)
		}
		o.CrossBaseScore[i] = base
	}
	return o
}
