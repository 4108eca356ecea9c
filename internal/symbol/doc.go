// Package symbol provides the core data model for the symbol enumeration
// pipeline.
//
// This package contains type definitions and the Availability ordering only.
// All other internal packages import symbol; symbol imports nothing internal.
// This keeps the data model the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Availability is a comparable struct usable as a map key; its equality
//     and its ordering must agree (no ties across distinct epochs)
//   - Nothing in this package is mutated after the producing pipeline stage
//     completes; each stage hands an immutable result to the next
//   - Ordering is always explicit (SortedNameVersions, SortAvailabilities);
//     no consumer may rely on map iteration order
package symbol
