package load

import (
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"symbolgen/internal/symbol"
)

// LoadAliases reads an alias table: a YAML list of {from, to} pairs.
// List order is preserved; the resolver's first-match semantics depend on it.
func LoadAliases(path string) ([]symbol.AliasPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	var pairs []symbol.AliasPair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}
	for i := range pairs {
		pairs[i].From = norm.NFC.String(pairs[i].From)
		pairs[i].To = norm.NFC.String(pairs[i].To)
	}
	return pairs, nil
}

// LoadSuffixRules reads the localization suffix table: a YAML list of
// {suffix, localization} rules, order preserved (first match wins).
func LoadSuffixRules(path string) ([]symbol.LocalizationSuffixRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	var rules []symbol.LocalizationSuffixRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}
	return rules, nil
}

// LoadAsIs reads the restriction table: a YAML map of canonical name to
// restriction note.
func LoadAsIs(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}
	asIs := make(map[string]string, len(raw))
	for name, note := range raw {
		asIs[norm.NFC.String(name)] = note
	}
	return asIs, nil
}
