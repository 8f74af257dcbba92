// scorer.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Component F: the scorer. Computes a Placement's score following the
// same shape as the teacher lineage's TileMove.Score (move.go) - a
// main-line letter sum multiplied by the compounded word multipliers
// of newly placed cells, plus one crossword contribution per covered
// Open cell (each seeing only its own cell's bonus, never the main
// line's), plus the 50-point bingo bonus - generalized from move.go's
// 15x15 board squares to the WordSpec's Cells.

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

// Score computes the total score of a placement against its
// WordSpec and the Oracle that was used to find it.
func Score(spec WordSpec, oracle *Oracle, p *Placement) int {
	mainSum := 0
	wordMultiplier := 1
	crossTotal := 0

	for offset, letter := range p.Letters {
		i := p.Start + offset
		cell := spec.Cells[i]
		letterValue := LetterValue(letter)
		if p.Blank[offset] {
			letterValue = 0
		}

		if cell.Kind == CellFixed {
			mainSum += LetterValue(cell.Letter)
			continue
		}

		letterMul, cellWordMul := cell.Bonus.Multipliers()
		mainSum += letterValue * letterMul
		wordMultiplier *= cellWordMul

		openIdx := oracle.CellIndex[i]
		if oracle.CrossHas[openIdx] {
			x := letterValue*letterMul + oracle.CrossBaseScore[openIdx]
			crossTotal += x * cellWordMul
		}
	}

	total := mainSum*wordMultiplier + crossTotal
	if p.TilesUsed == BingoTileCount {
		total += BingoBonus
	}
	return total
}
