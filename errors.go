// errors.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Error kinds surfaced at the CLI/HTTP boundary. The search engine
// itself never errors at runtime: an empty result set is success.

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

import "errors"

// Sentinel error kinds. Callers distinguish them with errors.Is;
// the wrapping fmt.Errorf call at the point of failure supplies the
// offending input in the message.
var (
	ErrInvalidLetterPool     = errors.New("invalid letter pool")
	ErrInvalidWordSpec       = errors.New("invalid word specification")
	ErrCrosswordCountMismatch = errors.New("crossword count does not match open cell count")
	ErrInvalidCrossword      = errors.New("invalid crossword token")
	ErrRackInsufficient      = errors.New("rack cannot supply a required letter")
	ErrLexiconLoad           = errors.New("lexicon could not be loaded")
)
