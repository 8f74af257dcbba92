// lexicon.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// This file implements the LexiconIndex: a trie over a-z, built once
// from a plain newline-delimited word list, supporting prefix stepping,
// terminal tests and the prefix+wildcard+suffix query the crossword
// oracle needs.
//
// The teacher lineage's own dictionary representation is a compressed
// Directed Acyclic Word Graph loaded from a precompiled binary
// (dawg.go, //go:embed dicts/*.bin.dawg). No such precompiled binaries
// ship with a plain word list, so this lexicon is instead built at
// process start from the word list itself, trading the DAWG's shared
// suffix compression for a plain trie - still O(total characters) to
// build and O(word length) to look up, as required.

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
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// crossCacheSize bounds the memoized prefix+suffix -> LetterSet
// lookups a Lexicon keeps for its CrossLetters queries. 2048 matches
// the teacher lineage's own DAWG cross-set cache size (dawg.go).
const crossCacheSize = 2048

// lexNode is one trie node. childMask mirrors the non-nil entries of
// children as a LetterSet, so the placement search can intersect
// admissible letters without a 26-way nil check.
type lexNode struct {
	children  [26]*lexNode
	childMask LetterSet
	terminal  bool
}

// Lexicon is a trie-backed LexiconIndex over a-z words.
type Lexicon struct {
	root     *lexNode
	numWords int
	cache    *crossCache
}

// crossCache memoizes CrossLetters results, keyed by "prefix\x00suffix".
// It is the trie-based analogue of the teacher lineage's DAWG
// crossCache (dawg.go): a simplelru.LRU guarded by an explicit mutex,
// since simplelru itself is not safe for concurrent use.
type crossCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU
}

func newCrossCache(size int) *crossCache {
	l, _ := simplelru.NewLRU(size, nil)
	return &crossCache{lru: l}
}

func (c *crossCache) lookup(key string, fetch func() LetterSet) LetterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.lru.Get(key); ok {
		return v.(LetterSet)
	}
	v := fetch()
	c.lru.Add(key, v)
	return v
}

// NewLexicon returns an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{root: &lexNode{}, cache: newCrossCache(crossCacheSize)}
}

// Root returns the root node of the trie.
func (l *Lexicon) Root() *lexNode {
	return l.root
}

// Step returns the child of n reached by letter, or (nil, false) if
// there is no such edge.
func (l *Lexicon) Step(n *lexNode, letter rune) (*lexNode, bool) {
	b := letterBit(letter)
	if b < 0 || n == nil {
		return nil, false
	}
	child := n.children[b]
	return child, child != nil
}

// Terminal reports whether n's path from the root spells a legal word.
func (l *Lexicon) Terminal(n *lexNode) bool {
	return n != nil && n.terminal
}

// ChildSet returns the set of letters for which n has an outgoing edge.
func (l *Lexicon) ChildSet(n *lexNode) LetterSet {
	if n == nil {
		return 0
	}
	return n.childMask
}

// Insert lowercases word and adds it to the trie. Non a-z characters
// (after lowercasing) reject the entry with an error; the caller of
// LoadLexicon treats a rejected line as a malformed word list.
func (l *Lexicon) Insert(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	n := l.root
	for _, r := range word {
		b := letterBit(r)
		if b < 0 {
			return fmt.Errorf("%w: non a-z character in word %q", ErrLexiconLoad, word)
		}
		if n.children[b] == nil {
			n.children[b] = &lexNode{}
			n.childMask = n.childMask.Add(r)
		}
		n = n.children[b]
	}
	if !n.terminal {
		n.terminal = true
		l.numWords++
	}
	return nil
}

// Contains reports whether word is a legal word in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	n := l.root
	for _, r := range strings.ToLower(word) {
		child, ok := l.Step(n, r)
		if !ok {
			return false
		}
		n = child
	}
	return l.Terminal(n)
}

// Len returns the number of distinct words inserted.
func (l *Lexicon) Len() int {
	return l.numWords
}

// CrossLetters answers the oracle's secondary query: the set of
// letters c such that prefix + c + suffix is a legal word. It walks
// prefix once, then for every outgoing edge at that node walks suffix,
// matching the contract in spec §3's LexiconIndex query (3) ("efficiently answered by
// walking the prefix, then for each letter c under that node, walking
// the suffix").
func (l *Lexicon) CrossLetters(prefix, suffix []rune) LetterSet {
	key := string(prefix) + "\x00" + string(suffix)
	return l.cache.lookup(key, func() LetterSet {
		n := l.root
		for _, r := range prefix {
			child, ok := l.Step(n, r)
			if !ok {
				return 0
			}
			n = child
		}
		var result LetterSet
		mask := l.ChildSet(n)
		for _, c := range mask.Runes() {
			child, ok := l.Step(n, c)
			if !ok {
				continue
			}
			if l.wordExistsFrom(child, suffix) {
				result = result.Add(c)
			}
		}
		return result
	})
}

func (l *Lexicon) wordExistsFrom(n *lexNode, suffix []rune) bool {
	for _, r := range suffix {
		child, ok := l.Step(n, r)
		if !ok {
			return false
		}
		n = child
	}
	return l.Terminal(n)
}

// LoadLexicon builds a Lexicon from a plain newline-delimited a-z word
// list file. Blank lines are skipped. Any I/O failure, or a line that
// Insert rejects, is wrapped in ErrLexiconLoad.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconLoad, err)
	}
	defer f.Close()

	lex := NewLexicon()
	scanner := bufio.NewScanner(f)
	// Word lists for a full Scrabble dictionary run a few hundred
	// thousand lines but individual lines are short; the default
	// scanner buffer is plenty.
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := lex.Insert(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconLoad, err)
	}
	return lex, nil
}
