// Package alias resolves raw symbol names to their canonical names using
// the merged current/legacy alias tables.
package alias

import "symbolgen/internal/symbol"

// Resolver maps a symbol name to its canonical name. The working table is
// built once at construction; Resolve is a pure function of it.
type Resolver struct {
	pairs []symbol.AliasPair
}

// NewResolver builds the working alias table as current \ legacy: a pair
// that appears in both tables with the same (from, to) is a superseded
// duplicate and is dropped entirely. Legacy-only pairs never enter the
// working table. Order of the current table is preserved, so first-match
// semantics are stable.
func NewResolver(current, legacy []symbol.AliasPair) *Resolver {
	superseded := make(map[symbol.AliasPair]bool, len(legacy))
	for _, p := range legacy {
		superseded[p] = true
	}

	pairs := make([]symbol.AliasPair, 0, len(current))
	for _, p := range current {
		if superseded[p] {
			continue
		}
		pairs = append(pairs, p)
	}
	return &Resolver{pairs: pairs}
}

// Resolve returns the target of the first pair whose From equals name, or
// name unchanged if no pair matches. Resolution is a single hop: chains
// (A->B, B->C) are not followed.
func (r *Resolver) Resolve(name string) string {
	for _, p := range r.pairs {
		if p.From == name {
			return p.To
		}
	}
	return name
}

// Len reports the size of the working table.
func (r *Resolver) Len() int {
	return len(r.pairs)
}
