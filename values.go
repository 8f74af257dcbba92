// values.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Component A: static scoring constants - letter values and the bingo
// bonus (the bonus multiplier table is Bonus.Multipliers in query.go).
// The letter values below are the "(old) standard
// English tile set" scores from the teacher lineage's bag.go, reduced
// to just the scores (this engine has no bag to draw from, so the
// per-letter tile counts that accompanied them there have no role
// here).

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

// BingoBonus is awarded when a placement draws exactly BingoTileCount
// tiles from the rack.
const BingoBonus = 50

// BingoTileCount is the number of tiles a placement must draw from
// the rack to earn BingoBonus.
const BingoTileCount = 7

var letterValues = [26]int{
	1, 3, 3, 2, 1, // a b c d e
	4, 2, 4, 1, 8, // f g h i j
	5, 1, 3, 1, 1, // k l m n o
	3, 10, 1, 1, 1, // p q r s t
	1, 4, 4, 8, 4, // u v w x y
	10, // z
}

// LetterValue returns the point value of a letter; blanks ('?') are
// worth zero, matching standard Scrabble scoring.
func LetterValue(letter rune) int {
	if letter == '?' {
		return 0
	}
	if b := letterBit(letter); b >= 0 {
		return letterValues[b]
	}
	return 0
}
