// collector_test.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf

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

import "testing"

func TestCollectorDedupesIdenticalPlacements(t *testing.T) {
	spec := openSpec(3)
	oracle := &Oracle{
		Allowed:        []LetterSet{AllLetters, AllLetters, AllLetters},
		CrossBaseScore: []int{0, 0, 0},
		CrossHas:       []bool{false, false, false},
		CellIndex:      []int{0, 1, 2},
	}
	p := Placement{Start: 0, End: 3, Letters: []rune("cat"), Blank: []bool{false, false, false}, TilesUsed: 3}

	c := NewCollector(0)
	c.Add(spec, oracle, p)
	c.Add(spec, oracle, p)
	results := c.TopN()
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 after adding the same placement twice", len(results))
	}
}

func TestCollectorRanksByScoreThenWord(t *testing.T) {
	spec := openSpec(3)
	oracle := &Oracle{
		Allowed:        []LetterSet{AllLetters, AllLetters, AllLetters},
		CrossBaseScore: []int{0, 0, 0},
		CrossHas:       []bool{false, false, false},
		CellIndex:      []int{0, 1, 2},
	}
	c := NewCollector(0)
	c.Add(spec, oracle, Placement{Start: 0, End: 3, Letters: []rune("cat"), Blank: []bool{false, false, false}, TilesUsed: 3})
	c.Add(spec, oracle, Placement{Start: 0, End: 3, Letters: []rune("act"), Blank: []bool{false, false, false}, TilesUsed: 3})

	results := c.TopN()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Both score the same (same letters, different order), so the
	// alphabetical tiebreak decides: "act" before "cat".
	if results[0].Placement.Word() != "act" || results[1].Placement.Word() != "cat" {
		t.Errorf("order = [%q, %q], want [act, cat]", results[0].Placement.Word(), results[1].Placement.Word())
	}
}

func TestCollectorTruncatesToLimit(t *testing.T) {
	spec := openSpec(1)
	oracle := &Oracle{
		Allowed:        []LetterSet{AllLetters},
		CrossBaseScore: []int{0},
		CrossHas:       []bool{false},
		CellIndex:      []int{0},
	}
	c := NewCollector(1)
	c.Add(spec, oracle, Placement{Start: 0, End: 1, Letters: []rune("a"), Blank: []bool{false}, TilesUsed: 1})
	c.Add(spec, oracle, Placement{Start: 0, End: 1, Letters: []rune("z"), Blank: []bool{false}, TilesUsed: 1})

	results := c.TopN()
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (limit)", len(results))
	}
}
