package emit

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbolgen/internal/gen"
	"symbolgen/internal/symbol"
)

var (
	e13 = symbol.Availability{IOS: "13.0", MacOS: "10.15", TvOS: "13.0", WatchOS: "6.0"}
	e14 = symbol.Availability{IOS: "14.0", MacOS: "11.0", TvOS: "14.0", WatchOS: "7.0"}
)

// fixtureResult runs the pipeline over a small fixed input: one renamed
// symbol and one stable, localized, restricted symbol.
func fixtureResult(t *testing.T) *gen.Result {
	t.Helper()
	result, err := gen.Run(gen.Inputs{
		Records: []symbol.ScannedRecord{
			{RawName: "todo.list", Availability: e13},
			{RawName: "globe", Availability: e13},
			{RawName: "checklist", Availability: e14},
			{RawName: "globe", Availability: e14},
			{RawName: "globe.ar", Availability: e14},
		},
		CurrentAliases: []symbol.AliasPair{{From: "todo.list", To: "checklist"}},
		SuffixRules:    []symbol.LocalizationSuffixRule{{Suffix: "ar", Localization: "ar"}},
		Previews: map[string]string{
			"todo.list": "List",
			"globe":     "Globe",
			"checklist": "List",
		},
		AsIs: map[string]string{"globe": "May only refer to the globe asset."},
	})
	require.NoError(t, err)
	return result
}

// TestSwift_Golden compares full emission against the golden file.
func TestSwift_Golden(t *testing.T) {
	source := Swift(fixtureResult(t), "Symbol")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "enum", source)
}

// TestSwift_Shape spot-checks structural properties independent of the
// golden file.
func TestSwift_Shape(t *testing.T) {
	source := string(Swift(fixtureResult(t), "Symbol"))

	assert.Contains(t, source, "public enum Symbol: String, CaseIterable {")
	assert.Contains(t, source, `case todoList = "todo.list"`)
	assert.Contains(t, source, `renamed: "checklist"`)
	assert.Contains(t, source, "Localized variants: ar (iOS 14.0).")
	assert.Contains(t, source, "static let rawValues_13_0:")
	assert.Contains(t, source, `.checklist: "todo.list",`, "at the old epoch the live case resolves to the old name")

	// Deterministic: a second emission is byte-identical.
	assert.Equal(t, source, string(Swift(fixtureResult(t), "Symbol")))

	// Tables come newest epoch first.
	assert.Less(t,
		strings.Index(source, "rawValues_14_0"),
		strings.Index(source, "rawValues_13_0"))
}
