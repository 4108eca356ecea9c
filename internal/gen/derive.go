package gen

import "symbolgen/internal/symbol"

// Derive expands one merged symbol into its enumeration cases.
//
// The live case carries the canonical name and is introduced at the largest
// epoch in the name history. Every other distinct name in the history yields
// exactly one deprecated case: introduced at the smallest epoch carrying
// that name, deprecated at the nearest strictly later epoch whose name
// differs, and renamed to the live case. A name with no later differing
// successor breaks the rename chain and is a fatal integrity violation.
//
// Derive is pure and is called once per symbol.
func Derive(sym *symbol.MergedSymbol) ([]symbol.EnumCase, error) {
	versions := sym.SortedNameVersions()
	introducedAt := versions[len(versions)-1].Availability

	cases := []symbol.EnumCase{{
		CaseID:        sym.CanonicalName,
		Preview:       sym.Preview,
		Restriction:   sym.Restriction,
		Localizations: sym.Localizations,
		IntroducedAt:  introducedAt,
		NameVersions:  versions,
	}}

	seen := map[string]bool{sym.CanonicalName: true}
	for i, v := range versions {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true

		deprecatedAt, ok := nextDifferingEpoch(versions, i)
		if !ok {
			return nil, NewBrokenChainError(sym.CanonicalName, v.Name, v.Availability)
		}

		cases = append(cases, symbol.EnumCase{
			CaseID:        v.Name,
			Preview:       sym.Preview,
			Restriction:   sym.Restriction,
			Localizations: localizationsSince(sym.Localizations, v.Availability),
			IntroducedAt:  v.Availability,
			Deprecation: &symbol.Deprecation{
				At:        deprecatedAt,
				RenamedTo: sym.CanonicalName,
			},
			NameVersions: versions,
		})
	}

	return cases, nil
}

// nextDifferingEpoch returns the epoch of the nearest entry after index i
// whose name differs from the entry at i. Intermediate epochs that still
// carry the same name are skipped, never the rename itself.
func nextDifferingEpoch(versions []symbol.NameVersion, i int) (symbol.Availability, bool) {
	for _, v := range versions[i+1:] {
		if v.Name != versions[i].Name {
			return v.Availability, true
		}
	}
	return symbol.Availability{}, false
}

// localizationsSince filters the localization history to epochs at or after
// the case's own introduction. A deprecated case must not advertise
// localization support gained outside its epoch window.
func localizationsSince(locs map[symbol.Availability]map[string]bool, since symbol.Availability) map[symbol.Availability]map[string]bool {
	filtered := make(map[symbol.Availability]map[string]bool, len(locs))
	for avail, set := range locs {
		if avail.Compare(since) >= 0 {
			filtered[avail] = set
		}
	}
	return filtered
}
