package gen

import (
	"sort"

	"symbolgen/internal/alias"
	"symbolgen/internal/symbol"
)

// Inputs carries everything the pipeline consumes, already parsed into the
// core data model by the load package.
type Inputs struct {
	Records        []symbol.ScannedRecord
	CurrentAliases []symbol.AliasPair
	LegacyAliases  []symbol.AliasPair
	SuffixRules    []symbol.LocalizationSuffixRule
	Previews       map[string]string
	AsIs           map[string]string
}

// Result is the pipeline output handed to the emitter.
type Result struct {
	// Symbols in creation order.
	Symbols []*symbol.MergedSymbol

	// Cases sorted by case id ascending.
	Cases []symbol.EnumCase

	// Rows of the raw-value table, epoch-major ascending.
	Rows []symbol.RawValueRow

	// Availabilities is the global epoch set, ascending.
	Availabilities []symbol.Availability

	// UnresolvedPreviews lists base names lacking a preview entry, in
	// first-encounter order. Warnings only; generation still completed.
	UnresolvedPreviews []string
}

// Run executes the four pipeline stages in sequence. Any returned error is
// an IntegrityError; no partial result is produced alongside one.
func Run(in Inputs) (*Result, error) {
	resolver := alias.NewResolver(in.CurrentAliases, in.LegacyAliases)

	symbols, unresolved := Merge(in.Records, Indexes{
		SuffixRules: in.SuffixRules,
		Previews:    in.Previews,
		AsIs:        in.AsIs,
	}, resolver)

	var cases []symbol.EnumCase
	for _, sym := range symbols {
		derived, err := Derive(sym)
		if err != nil {
			return nil, err
		}
		cases = append(cases, derived...)
	}
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].CaseID < cases[j].CaseID
	})

	avails := distinctAvailabilities(symbols)

	rows, err := BuildRawValueTable(cases, avails)
	if err != nil {
		return nil, err
	}

	return &Result{
		Symbols:            symbols,
		Cases:              cases,
		Rows:               rows,
		Availabilities:     avails,
		UnresolvedPreviews: unresolved,
	}, nil
}

// distinctAvailabilities collects the union of every symbol's epoch keys,
// sorted ascending.
func distinctAvailabilities(symbols []*symbol.MergedSymbol) []symbol.Availability {
	set := make(map[symbol.Availability]bool)
	for _, sym := range symbols {
		for avail := range sym.NameVersions {
			set[avail] = true
		}
	}
	avails := make([]symbol.Availability, 0, len(set))
	for avail := range set {
		avails = append(avails, avail)
	}
	symbol.SortAvailabilities(avails)
	return avails
}
