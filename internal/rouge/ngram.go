//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "strings"

// ngramSeparator joins the tokens of an n-gram into a comparable key.
// Whitespace-split tokens never contain it.
const ngramSeparator = "\x00"

// NGrams is a collection of n-grams in one of two modes.
//
// In exclusive mode it behaves as a set and duplicates collapse. Otherwise it
// is an ordered multiset where every occurrence is kept and counted.
type NGrams struct {
	exclusive bool
	// set holds the distinct n-grams in exclusive mode.
	set map[string]struct{}
	// list holds every n-gram in insertion order in non-exclusive mode.
	list []string
}

// EmptyNGrams returns an empty collection in the given mode.
func EmptyNGrams(exclusive bool) *NGrams {
	g := &NGrams{exclusive: exclusive}
	if exclusive {
		g.set = make(map[string]struct{})
	}
	return g
}

// NewNGrams builds all contiguous windows of n tokens. The collection is
// empty when n is not positive or there are fewer than n tokens.
func NewNGrams(n int, tokens []string, exclusive bool) *NGrams {
	g := EmptyNGrams(exclusive)
	if n <= 0 || len(tokens) < n {
		return g
	}
	for i := 0; i+n <= len(tokens); i++ {
		g.Add(JoinNGram(tokens[i : i+n]))
	}
	return g
}

// JoinNGram returns the collection key of a token tuple.
func JoinNGram(tokens []string) string {
	return strings.Join(tokens, ngramSeparator)
}

// Exclusive reports whether the collection has set semantics.
func (g *NGrams) Exclusive() bool {
	return g.exclusive
}

// Add inserts an n-gram key.
func (g *NGrams) Add(gram string) {
	if g.exclusive {
		g.set[gram] = struct{}{}
		return
	}
	g.list = append(g.list, gram)
}

// Len returns the distinct count in exclusive mode and the total count
// otherwise.
func (g *NGrams) Len() int {
	if g.exclusive {
		return len(g.set)
	}
	return len(g.list)
}

// Contains reports whether the n-gram key is present.
func (g *NGrams) Contains(gram string) bool {
	if g.exclusive {
		_, ok := g.set[gram]
		return ok
	}
	for _, e := range g.list {
		if e == gram {
			return true
		}
	}
	return false
}

// Intersection returns the n-grams shared by g and other.
//
// In non-exclusive mode every element of g, in order, consumes the first
// unconsumed equal element of other, so an n-gram present twice in g and once
// in other matches exactly once.
func (g *NGrams) Intersection(other *NGrams) *NGrams {
	g.mustMatch(other)
	out := EmptyNGrams(g.exclusive)
	if g.exclusive {
		for gram := range g.set {
			if _, ok := other.set[gram]; ok {
				out.set[gram] = struct{}{}
			}
		}
		return out
	}
	remaining := make(map[string]int, len(other.list))
	for _, gram := range other.list {
		remaining[gram]++
	}
	for _, gram := range g.list {
		if remaining[gram] == 0 {
			continue
		}
		remaining[gram]--
		out.list = append(out.list, gram)
	}
	return out
}

// Union returns g merged with others. Non-exclusive collections are
// concatenated without deduplication.
func (g *NGrams) Union(others ...*NGrams) *NGrams {
	out := EmptyNGrams(g.exclusive)
	if g.exclusive {
		for gram := range g.set {
			out.set[gram] = struct{}{}
		}
	} else {
		out.list = append(out.list, g.list...)
	}
	for _, other := range others {
		g.mustMatch(other)
		if g.exclusive {
			for gram := range other.set {
				out.set[gram] = struct{}{}
			}
			continue
		}
		out.list = append(out.list, other.list...)
	}
	return out
}

// mustMatch panics when two collections of different modes are combined.
func (g *NGrams) mustMatch(other *NGrams) {
	if g.exclusive != other.exclusive {
		panic("rouge: cannot combine exclusive and non-exclusive n-grams")
	}
}
