package gen

import (
	"strings"

	"symbolgen/internal/symbol"
)

// Resolver maps a base name to its canonical name. Satisfied by
// alias.Resolver.
type Resolver interface {
	Resolve(name string) string
}

// Indexes bundles the side tables the merge stage consults.
type Indexes struct {
	// SuffixRules mark localized name variants. At most one rule should
	// match a given raw name; the first match wins.
	SuffixRules []symbol.LocalizationSuffixRule

	// Previews maps base name to its human-readable preview string.
	// Missing entries are tolerated and reported as warnings.
	Previews map[string]string

	// AsIs maps canonical name to a restriction note for symbols that may
	// only denote one specific built-in asset.
	AsIs map[string]string
}

// Merge folds the flat per-epoch record stream into one MergedSymbol per
// canonical name.
//
// Records are processed in input order. The result slice preserves symbol
// creation order so output is reproducible without relying on map iteration.
// The second return value lists base names that had no preview entry, each
// at most once, in first-encounter order.
func Merge(records []symbol.ScannedRecord, idx Indexes, resolve Resolver) ([]*symbol.MergedSymbol, []string) {
	byName := make(map[string]*symbol.MergedSymbol, len(records))
	ordered := make([]*symbol.MergedSymbol, 0, len(records))

	var unresolved []string
	warned := make(map[string]bool)

	for _, rec := range records {
		baseName, localization := stripLocalizationSuffix(rec.RawName, idx.SuffixRules)

		preview, havePreview := idx.Previews[baseName]
		if !havePreview && !warned[baseName] {
			warned[baseName] = true
			unresolved = append(unresolved, baseName)
		}

		canonical := resolve.Resolve(baseName)

		sym, ok := byName[canonical]
		if !ok {
			sym = &symbol.MergedSymbol{
				CanonicalName: canonical,
				Restriction:   idx.AsIs[canonical], // looked up once, at creation
				Preview:       preview,
				NameVersions:  make(map[symbol.Availability]string, 1),
				Localizations: make(map[symbol.Availability]map[string]bool, 1),
			}
			byName[canonical] = sym
			ordered = append(ordered, sym)
		}

		// The epoch entry exists even when this record carries no
		// localization; the key set must equal the epochs the symbol was
		// seen at.
		locs, ok := sym.Localizations[rec.Availability]
		if !ok {
			locs = make(map[string]bool)
			sym.Localizations[rec.Availability] = locs
		}
		if localization != "" {
			locs[localization] = true
		}

		// Last write wins; the manifest emits one entry per symbol per
		// epoch, so a conflicting overwrite cannot legitimately occur.
		sym.NameVersions[rec.Availability] = baseName
	}

	return ordered, unresolved
}

// stripLocalizationSuffix matches rawName against the suffix rules and
// returns the base name plus the localization flag of the first matching
// rule, or (rawName, "") when no rule matches.
func stripLocalizationSuffix(rawName string, rules []symbol.LocalizationSuffixRule) (string, string) {
	for _, rule := range rules {
		dotted := "." + rule.Suffix
		if strings.HasSuffix(rawName, dotted) && len(rawName) > len(dotted) {
			return strings.TrimSuffix(rawName, dotted), rule.Localization
		}
	}
	return rawName, ""
}
