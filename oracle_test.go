// oracle_test.go
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

func TestBuildOracleUnconstrainedCrosswordAllowsAll(t *testing.T) {
	lex := buildTestLexicon(t, "cat")
	spec := openSpec(1)
	q, err := NewQuery(NewRack([]rune("c")), spec, []Crossword{{}})
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	o := BuildOracle(lex, q)
	if o.CrossHas[0] {
		t.Errorf("expected an empty crossword to report CrossHas = false")
	}
	if o.Allowed[0] != AllLetters {
		t.Errorf("expected an empty crossword to allow AllLetters, got %026b", o.Allowed[0])
	}
}

func TestBuildOracleComputesCrossLettersAndBaseScore(t *testing.T) {
	lex := buildTestLexicon(t, "cat", "bat", "hat")
	spec := openSpec(1)
	q, err := NewQuery(NewRack([]rune("c")), spec, []Crossword{{Prefix: "", Suffix: "at"}})
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	o := BuildOracle(lex, q)
	if !o.CrossHas[0] {
		t.Errorf("expected a nonempty crossword to report CrossHas = true")
	}
	want := NewLetterSet([]rune{'c', 'b', 'h'})
	if o.Allowed[0] != want {
		t.Errorf("Allowed[0] = %026b, want %026b", o.Allowed[0], want)
	}
	// "at" = a(1) + t(1) = 2
	if got, want := o.CrossBaseScore[0], 2; got != want {
		t.Errorf("CrossBaseScore[0] = %d, want %d", got, want)
	}
}

func TestBuildOracleCellIndexSkipsFixedCells(t *testing.T) {
	spec := WordSpec{Cells: []Cell{
		{Kind: CellFixed, Letter: 'c'},
		{Kind: CellOpen},
		{Kind: CellOpen},
	}}
	lex := buildTestLexicon(t, "cat")
	q, err := NewQuery(NewRack([]rune("at")), spec, nil)
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	o := BuildOracle(lex, q)
	if o.CellIndex[0] != -1 {
		t.Errorf("CellIndex[0] (Fixed) = %d, want -1", o.CellIndex[0])
	}
	if o.CellIndex[1] != 0 || o.CellIndex[2] != 1 {
		t.Errorf("CellIndex[1:3] = %v, want [0 1]", o.CellIndex[1:3])
	}
}
