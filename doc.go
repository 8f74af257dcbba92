// doc.go
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

// Package wordline implements a Scrabble query-evaluation engine: it
// enumerates every legal placement of rack tiles against a single
// line of the board (a word specification with pre-existing tiles and
// bonus squares) that forms a valid dictionary word on the main line
// while simultaneously satisfying every declared crossword, scores
// each placement under standard Scrabble rules, and ranks the result.
//
// It does not track board state across turns, model an opponent, or
// choose a move to play; it only answers "given this rack and this
// one line, what can legally be placed, and how much is it worth".
package wordline
