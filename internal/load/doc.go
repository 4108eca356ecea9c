// Package load parses the input files into the core data model.
//
// A generation run reads one input directory with this layout:
//
//	snapshots/*.cue     one snapshot manifest per release epoch
//	aliases.yaml        current alias table, ordered {from, to} pairs
//	legacy_aliases.yaml legacy alias table, same shape
//	localizations.yaml  ordered {suffix, localization} rules
//	as_is.yaml          canonical name -> restriction note
//	names.txt           symbol base names, one per line
//	previews.txt        preview strings, parallel to names.txt line by line
//
// A snapshot manifest declares the epoch's availability tuple and the raw
// symbol names known at that epoch:
//
//	availability: {
//		iOS:     "13.0"
//		macOS:   "10.15"
//		tvOS:    "13.0"
//		watchOS: "6.0"
//	}
//	symbols: [
//		"square.and.arrow.up",
//		"character.book.closed.ar",
//	]
//
// All symbol names are NFC-normalized at this boundary so identity
// comparisons downstream are canonical. Loading is the only stage that
// touches the filesystem; everything after it operates on memory.
package load
