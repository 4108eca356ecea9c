package load

import (
	"path/filepath"

	"symbolgen/internal/gen"
)

// Input file names within a generation input directory.
const (
	SnapshotsDir      = "snapshots"
	AliasesFile       = "aliases.yaml"
	LegacyAliasesFile = "legacy_aliases.yaml"
	LocalizationsFile = "localizations.yaml"
	AsIsFile          = "as_is.yaml"
	NamesFile         = "names.txt"
	PreviewsFile      = "previews.txt"
)

// LoadInputs reads a complete input directory into pipeline inputs.
func LoadInputs(dir string) (gen.Inputs, error) {
	var in gen.Inputs

	records, err := LoadSnapshots(filepath.Join(dir, SnapshotsDir))
	if err != nil {
		return in, err
	}
	current, err := LoadAliases(filepath.Join(dir, AliasesFile))
	if err != nil {
		return in, err
	}
	legacy, err := LoadAliases(filepath.Join(dir, LegacyAliasesFile))
	if err != nil {
		return in, err
	}
	rules, err := LoadSuffixRules(filepath.Join(dir, LocalizationsFile))
	if err != nil {
		return in, err
	}
	asIs, err := LoadAsIs(filepath.Join(dir, AsIsFile))
	if err != nil {
		return in, err
	}
	previews, err := LoadPreviewIndex(filepath.Join(dir, NamesFile), filepath.Join(dir, PreviewsFile))
	if err != nil {
		return in, err
	}

	in = gen.Inputs{
		Records:        records,
		CurrentAliases: current,
		LegacyAliases:  legacy,
		SuffixRules:    rules,
		Previews:       previews,
		AsIs:           asIs,
	}
	return in, nil
}
