package gen

import "symbolgen/internal/symbol"

// BuildRawValueTable crosses every case with every epoch the case already
// exists at and emits the raw name valid for referencing the case at that
// epoch: the originating symbol's name-version entry with the smallest epoch
// still at or after the one being filled in.
//
// avails is the global set of distinct epochs, ascending. Rows are emitted
// epoch-major in the given order, cases in the given order within an epoch.
//
// Validation runs before the table is returned: for every epoch the row
// count must equal the number of cases introduced at or after it. A mismatch
// means a derivation bug and fails fatally.
func BuildRawValueTable(cases []symbol.EnumCase, avails []symbol.Availability) ([]symbol.RawValueRow, error) {
	rows := make([]symbol.RawValueRow, 0, len(cases)*len(avails))
	perEpoch := make(map[symbol.Availability]int, len(avails))

	for _, a := range avails {
		for _, c := range cases {
			if a.Compare(c.IntroducedAt) > 0 {
				continue // case does not exist yet at this epoch
			}
			name, ok := nameValidAt(c.NameVersions, a)
			if !ok {
				continue // leaves a hole for validation to report
			}
			rows = append(rows, symbol.RawValueRow{
				Availability: a,
				CaseID:       c.CaseID,
				Name:         name,
			})
			perEpoch[a]++
		}
	}

	for _, a := range avails {
		alive := 0
		for _, c := range cases {
			if c.IntroducedAt.Compare(a) >= 0 {
				alive++
			}
		}
		if perEpoch[a] != alive {
			return nil, NewRawValueMismatchError(a, perEpoch[a], alive)
		}
	}

	return rows, nil
}

// nameValidAt picks the name that is correct looking forward from epoch a:
// the version with the smallest availability >= a. versions must be epoch
// ascending.
func nameValidAt(versions []symbol.NameVersion, a symbol.Availability) (string, bool) {
	for _, v := range versions {
		if v.Availability.Compare(a) >= 0 {
			return v.Name, true
		}
	}
	return "", false
}
