// collector.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Component G: the result collector. Deduplicates placements, ranks
// them by (score desc, word asc), and returns the top N. The ranking
// idiom - a named sort.Interface type fed to sort.Sort, rather than a
// sort.Slice closure - follows the teacher lineage's own byScore type
// in robot.go, which ranks a HighScoreRobot's candidate moves the same
// way.

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
	"sort"
)

// Result pairs a Placement with its computed score.
type Result struct {
	Placement Placement
	Score     int
}

// Collector deduplicates and ranks Placements found by Search.
type Collector struct {
	limit   int
	seen    map[string]bool
	results []Result
}

// NewCollector returns a Collector whose TopN returns at most limit
// results (limit <= 0 means unbounded). With a limit, Add keeps the
// stored results bounded by discarding those that can no longer rank
// among the top limit.
func NewCollector(limit int) *Collector {
	return &Collector{limit: limit, seen: make(map[string]bool)}
}

// dedupKey identifies a Placement by (start, end, letter sequence,
// blank mask), per spec §4.G's duplicate-elimination rule.
func dedupKey(p Placement) string {
	blanks := make([]byte, len(p.Blank))
	for i, b := range p.Blank {
		if b {
			blanks[i] = '1'
		} else {
			blanks[i] = '0'
		}
	}
	return fmt.Sprintf("%d:%d:%s:%s", p.Start, p.End, string(p.Letters), blanks)
}

// Add scores p and keeps it unless it is a duplicate of a
// previously-added placement.
func (c *Collector) Add(spec WordSpec, oracle *Oracle, p Placement) {
	key := dedupKey(p)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.results = append(c.results, Result{Placement: p, Score: Score(spec, oracle, &p)})
	if c.limit > 0 && len(c.results) >= 2*c.limit {
		sort.Sort(byRank(c.results))
		c.results = c.results[:c.limit]
	}
}

// byRank orders Results by (score desc, word asc), matching the
// teacher lineage's byScore sort.Interface idiom in robot.go.
type byRank []Result

func (r byRank) Len() int      { return len(r) }
func (r byRank) Swap(i, j int) { r[i], r[j] = r[j], r[i] }
func (r byRank) Less(i, j int) bool {
	if r[i].Score != r[j].Score {
		return r[i].Score > r[j].Score
	}
	return r[i].Placement.Word() < r[j].Placement.Word()
}

// TopN returns the ranked, deduplicated results, truncated to the
// collector's limit (or the full set if the limit is <= 0).
func (c *Collector) TopN() []Result {
	sort.Sort(byRank(c.results))
	if c.limit > 0 && len(c.results) > c.limit {
		return c.results[:c.limit]
	}
	return c.results
}
