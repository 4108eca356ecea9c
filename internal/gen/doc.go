// Package gen implements the symbol enumeration pipeline.
//
// The pipeline folds per-epoch snapshot records into one merged record per
// canonical symbol, derives the enumeration cases with their availability
// and rename-chain annotations, and builds the per-epoch raw-value table.
//
// ARCHITECTURE:
//
// Four stages run strictly in sequence over in-memory data:
//
//  1. alias.Resolver normalizes raw names to canonical names
//  2. Merge folds the record stream into MergedSymbols (keyed by canonical
//     name, creation order preserved)
//  3. Derive expands each MergedSymbol into its case list (one live case
//     plus the deprecated rename chain)
//  4. BuildRawValueTable crosses all cases with the global epoch set and
//     validates the result
//
// No stage mutates its input; each produces an immutable result consumed by
// the next. There is no concurrency, no randomness, and no reliance on map
// iteration order - every ordering that reaches the output is an explicit
// sort.
//
// Failure model: data-integrity violations (a deprecated name with no
// successor, a raw-value count mismatch) are IntegrityErrors raised at a
// single validation boundary and abort the run before any output. A base
// name missing from the preview index is collected as a warning and never
// blocks generation.
package gen
