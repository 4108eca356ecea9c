package symbol

import "sort"

// ScannedRecord is one manifest entry: a raw symbol name observed at a
// release epoch. Records are ephemeral; the merge stage consumes them once.
type ScannedRecord struct {
	RawName      string
	Availability Availability
}

// AliasPair maps an old symbol name to its replacement. Pairs are read-only;
// the resolver builds its working table from the current and legacy tables
// at construction.
type AliasPair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LocalizationSuffixRule marks names ending in "." + Suffix as localized
// variants. Stripping the suffix yields the base name used for all identity
// logic; Localization is the variant flag recorded against the epoch.
type LocalizationSuffixRule struct {
	Suffix       string `yaml:"suffix"`
	Localization string `yaml:"localization"`
}

// NameVersion is one entry of a symbol's name history: the base name the
// symbol carried at a given epoch.
type NameVersion struct {
	Availability Availability
	Name         string
}

// MergedSymbol is the folded form of all records that resolved to one
// canonical name. NameVersions is never empty; its keys are exactly the
// epochs at which the symbol existed under some name.
type MergedSymbol struct {
	CanonicalName string
	Restriction   string // set on first creation from the as-is index, or empty
	Preview       string // empty if the preview index had no entry
	NameVersions  map[Availability]string
	Localizations map[Availability]map[string]bool
}

// SortedNameVersions returns the name history ordered by epoch ascending
// (oldest first).
func (s *MergedSymbol) SortedNameVersions() []NameVersion {
	versions := make([]NameVersion, 0, len(s.NameVersions))
	for avail, name := range s.NameVersions {
		versions = append(versions, NameVersion{Availability: avail, Name: name})
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Availability.Before(versions[j].Availability)
	})
	return versions
}

// Deprecation records that a case stopped being the active name at an epoch
// and which live case superseded it.
type Deprecation struct {
	At        Availability
	RenamedTo string
}

// EnumCase is one member of the emitted enumeration. Exactly one case per
// symbol has Deprecation == nil; its CaseID equals the symbol's canonical
// name. CaseID doubles as the display name used for output ordering.
type EnumCase struct {
	CaseID        string
	Preview       string
	Restriction   string
	Localizations map[Availability]map[string]bool
	IntroducedAt  Availability
	Deprecation   *Deprecation

	// NameVersions is the originating symbol's full name history, epoch
	// ascending. The raw-value builder needs it to pick the epoch-valid name
	// for the case.
	NameVersions []NameVersion
}

// RawValueRow maps a case to the literal name string that must be used to
// reference its underlying symbol at a specific epoch.
type RawValueRow struct {
	Availability Availability
	CaseID       string
	Name         string
}
