// query_test.go
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

import (
	"errors"
	"testing"
)

func TestRackCountAndBlanks(t *testing.T) {
	r := NewRack([]rune("cat?"))
	if got, want := r.Count('c'), 1; got != want {
		t.Errorf("Count('c') = %d, want %d", got, want)
	}
	if got, want := r.Blanks(), 1; got != want {
		t.Errorf("Blanks() = %d, want %d", got, want)
	}
	if got, want := r.TotalTiles(), 4; got != want {
		t.Errorf("TotalTiles() = %d, want %d", got, want)
	}
}

func TestRackIsEmpty(t *testing.T) {
	if !(Rack{}).IsEmpty() {
		t.Errorf("expected zero-value Rack to be empty")
	}
	if NewRack([]rune("a")).IsEmpty() {
		t.Errorf("did not expect a rack holding a tile to be empty")
	}
}

func TestRackWithoutLetterAndBlankAreIndependent(t *testing.T) {
	r := NewRack([]rune("cat"))
	r2 := r.WithoutLetter('a')
	if r.Count('a') != 1 {
		t.Errorf("original rack was mutated by WithoutLetter")
	}
	if r2.Count('a') != 0 {
		t.Errorf("expected WithoutLetter('a') to remove the tile")
	}

	b := NewRack([]rune("a?"))
	b2 := b.WithoutBlank()
	if b.Blanks() != 1 {
		t.Errorf("original rack was mutated by WithoutBlank")
	}
	if b2.Blanks() != 0 {
		t.Errorf("expected WithoutBlank() to remove the blank")
	}
}

func TestRackLetterSetWidensWithBlank(t *testing.T) {
	r := NewRack([]rune("a?"))
	if r.LetterSet() != AllLetters {
		t.Errorf("expected a rack with a blank to report AllLetters")
	}
	r = NewRack([]rune("ab"))
	want := NewLetterSet([]rune{'a', 'b'})
	if got := r.LetterSet(); got != want {
		t.Errorf("LetterSet() = %026b, want %026b", got, want)
	}
}

func TestRackStringRoundTrip(t *testing.T) {
	r := NewRack([]rune("cat?"))
	if got, want := r.String(), "act?"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if back := NewRack([]rune(r.String())); back != r {
		t.Errorf("NewRack(String()) = %q, want %q", back.String(), r.String())
	}
}

func openSpec(n int) WordSpec {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Kind: CellOpen}
	}
	return WordSpec{Cells: cells}
}

func TestNewQueryRejectsSpecWithNoOpenCells(t *testing.T) {
	spec := WordSpec{Cells: []Cell{{Kind: CellFixed, Letter: 'a'}}}
	_, err := NewQuery(NewRack([]rune("a")), spec, nil)
	if !errors.Is(err, ErrInvalidWordSpec) {
		t.Errorf("NewQuery error = %v, want ErrInvalidWordSpec", err)
	}
}

func TestNewQueryExpandsEmptyCrosswords(t *testing.T) {
	spec := openSpec(3)
	q, err := NewQuery(NewRack([]rune("cat")), spec, nil)
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	if got, want := len(q.Crosswords), 3; got != want {
		t.Errorf("len(Crosswords) = %d, want %d", got, want)
	}
}

func TestNewQueryRejectsMismatchedCrosswordCount(t *testing.T) {
	spec := openSpec(3)
	_, err := NewQuery(NewRack([]rune("cat")), spec, []Crossword{{}})
	if !errors.Is(err, ErrCrosswordCountMismatch) {
		t.Errorf("NewQuery error = %v, want ErrCrosswordCountMismatch", err)
	}
}

func TestNewQueryRackSufficiencyJointAcrossConstrainedCells(t *testing.T) {
	spec := WordSpec{Cells: []Cell{
		{Kind: CellOpenConstrained, Letter: 's'},
		{Kind: CellOpenConstrained, Letter: 's'},
	}}
	// One blank can cover only one of the two required 's' cells.
	rack := NewRack([]rune("?"))
	_, err := NewQuery(rack, spec, nil)
	if !errors.Is(err, ErrRackInsufficient) {
		t.Errorf("NewQuery error = %v, want ErrRackInsufficient", err)
	}

	rack = NewRack([]rune("s?"))
	if _, err := NewQuery(rack, spec, nil); err != nil {
		t.Errorf("NewQuery with one direct tile and one blank failed: %v", err)
	}
}

func TestBonusMultipliers(t *testing.T) {
	cases := []struct {
		bonus       Bonus
		letterMul   int
		wordMul     int
	}{
		{BonusNone, 1, 1},
		{BonusDoubleLetter, 2, 1},
		{BonusTripleLetter, 3, 1},
		{BonusDoubleWord, 1, 2},
		{BonusTripleWord, 1, 3},
	}
	for _, c := range cases {
		letterMul, wordMul := c.bonus.Multipliers()
		if letterMul != c.letterMul || wordMul != c.wordMul {
			t.Errorf("Multipliers(%v) = (%d, %d), want (%d, %d)", c.bonus, letterMul, wordMul, c.letterMul, c.wordMul)
		}
	}
}
