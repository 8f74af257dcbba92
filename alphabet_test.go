// alphabet_test.go
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

func TestLetterSetAddHas(t *testing.T) {
	var s LetterSet
	s = s.Add('c')
	s = s.Add('a')
	if !s.Has('a') || !s.Has('c') {
		t.Errorf("expected set to contain a and c, got %026b", s)
	}
	if s.Has('b') {
		t.Errorf("did not expect set to contain b, got %026b", s)
	}
}

func TestNewLetterSetBlankWidensToAll(t *testing.T) {
	s := NewLetterSet([]rune{'a', '?', 'z'})
	if s != AllLetters {
		t.Errorf("expected a blank rune to widen the set to AllLetters, got %026b", s)
	}
}

func TestLetterSetRunesAscending(t *testing.T) {
	s := NewLetterSet([]rune{'z', 'a', 'm'})
	got := string(s.Runes())
	want := "amz"
	if got != want {
		t.Errorf("Runes() = %q, want %q", got, want)
	}
}

func TestLetterSetEmpty(t *testing.T) {
	var s LetterSet
	if !s.Empty() {
		t.Errorf("expected zero-value LetterSet to be empty")
	}
	if s.Add('a').Empty() {
		t.Errorf("did not expect a set with a member to be empty")
	}
}

func TestSingleLetterSet(t *testing.T) {
	s := SingleLetterSet('q')
	if !s.Has('q') {
		t.Errorf("expected SingleLetterSet('q') to contain q")
	}
	if s.Has('a') {
		t.Errorf("did not expect SingleLetterSet('q') to contain a")
	}
}
