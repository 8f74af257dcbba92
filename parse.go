// parse.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// The textual query-string grammar (spec §6) and the one-line-per-
// result output format. This is glue, not engine: the distilled
// specification explicitly calls the parser "out of scope" for the
// core, but a runnable CLI (§12) needs it, grounded in the same
// string-munging style the teacher lineage's own request decoding
// uses (server.go's board/rack parsing, main/main.go's flag parsing).

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
	"fmt"
	"strings"
)

// ParseLetterPool parses the letter-pool syntax of spec §6: a-z
// (case-insensitive) contribute one tile each, '*' contributes a
// blank, anything else is an error.
func ParseLetterPool(s string) (Rack, error) {
	runes := make([]rune, 0, len(s))
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
			runes = append(runes, c-'A'+'a')
		case c >= 'a' && c <= 'z':
			runes = append(runes, c)
		case c == '*':
			runes = append(runes, '?')
		default:
			return Rack{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidLetterPool, c)
		}
	}
	return NewRack(runes), nil
}

// ParseWordSpec parses the word-specification syntax of spec §6: an
// optional leading '/' sets AnchorLeft, an optional trailing '/' sets
// AnchorRight, and the body is a sequence of '.', '#', '!', A-Z or a-z
// tokens.
func ParseWordSpec(s string) (WordSpec, error) {
	var spec WordSpec
	body := s
	if strings.HasPrefix(body, "/") {
		spec.AnchorLeft = true
		body = body[1:]
	}
	if strings.HasSuffix(body, "/") {
		spec.AnchorRight = true
		body = body[:len(body)-1]
	}
	if body == "" {
		return WordSpec{}, fmt.Errorf("%w: empty word specification", ErrInvalidWordSpec)
	}
	for _, c := range body {
		switch {
		case c == '.':
			spec.Cells = append(spec.Cells, Cell{Kind: CellOpen, Bonus: BonusNone})
		case c == '#':
			spec.Cells = append(spec.Cells, Cell{Kind: CellOpen, Bonus: BonusDoubleLetter})
		case c == '!':
			spec.Cells = append(spec.Cells, Cell{Kind: CellOpen, Bonus: BonusTripleLetter})
		case c >= 'A' && c <= 'Z':
			spec.Cells = append(spec.Cells, Cell{Kind: CellFixed, Letter: c - 'A' + 'a'})
		case c >= 'a' && c <= 'z':
			spec.Cells = append(spec.Cells, Cell{Kind: CellOpenConstrained, Letter: c, Bonus: BonusNone})
		default:
			return WordSpec{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidWordSpec, c)
		}
	}
	if spec.OpenCount() == 0 {
		return WordSpec{}, fmt.Errorf("%w: no open cells", ErrInvalidWordSpec)
	}
	return spec, nil
}

// ParseCrosswords parses the crossword syntax of spec §6: each token
// matches [a-z]*\.[a-z]*, the letters before '.' forming the prefix
// and after it the suffix. An empty tokens slice means "all
// unconstrained" and is returned as-is for NewQuery to expand.
func ParseCrosswords(tokens []string) ([]Crossword, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]Crossword, 0, len(tokens))
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		dot := strings.IndexByte(lower, '.')
		if dot < 0 || strings.IndexByte(lower[dot+1:], '.') >= 0 {
			return nil, fmt.Errorf("%w: %q does not have exactly one '.'", ErrInvalidCrossword, tok)
		}
		prefix, suffix := lower[:dot], lower[dot+1:]
		if !isAZ(prefix) || !isAZ(suffix) {
			return nil, fmt.Errorf("%w: %q contains non a-z characters", ErrInvalidCrossword, tok)
		}
		out = append(out, Crossword{Prefix: prefix, Suffix: suffix})
	}
	return out, nil
}

func isAZ(s string) bool {
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// FormatResult renders one result per spec §6's output format:
// "<WORD> <CROSSWORD_1> ... <SCORE>", showing only the crosswords
// that were actually formed (oracle.CrossHas true), in the order of
// the Open cells the placement covers. Crosswords are upper case,
// except that a letter supplied by a blank is shown in lower case.
func FormatResult(spec WordSpec, q *Query, oracle *Oracle, r Result) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(r.Placement.Word()))
	for offset := range r.Placement.Letters {
		i := r.Placement.Start + offset
		cell := spec.Cells[i]
		if !cell.IsOpen() {
			continue
		}
		openIdx := oracle.CellIndex[i]
		if !oracle.CrossHas[openIdx] {
			continue
		}
		cw := q.Crosswords[openIdx]
		letter := strings.ToUpper(string(r.Placement.Letters[offset]))
		if r.Placement.Blank[offset] {
			letter = strings.ToLower(letter)
		}
		sb.WriteString(" ")
		sb.WriteString(strings.ToUpper(cw.Prefix))
		sb.WriteString(letter)
		sb.WriteString(strings.ToUpper(cw.Suffix))
	}
	fmt.Fprintf(&sb, " %d", r.Score)
	return sb.String()
}
