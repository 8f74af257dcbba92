// engine.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Wires components B-G together following the data flow described at
// the top of this module's design: a Query is built against a
// Lexicon, an Oracle is derived from both, the Search walks the
// Lexicon under the Oracle's guidance, and the Collector ranks what
// it finds.

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

// Evaluate runs a single query against lex and returns its top-limit
// results, ranked per Collector.TopN (limit <= 0 means unbounded), the
// Oracle built for the query (needed by FormatResult to show which
// crosswords were actually formed), and the search statistics
// gathered along the way.
func Evaluate(lex *Lexicon, q *Query, limit int) ([]Result, *Oracle, SearchStats) {
	oracle := BuildOracle(lex, q)
	placements, stats := Search(lex, q, oracle)
	c := NewCollector(limit)
	for _, p := range placements {
		c.Add(q.Spec, oracle, p)
	}
	return c.TopN(), oracle, stats
}
