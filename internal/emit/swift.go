// Package emit renders the pipeline result into Swift source.
//
// Emission is byte-deterministic: cases appear sorted by display name, raw
// value tables newest epoch first, and every list inside a table or doc
// comment carries an explicit sort. The output is golden-tested.
package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"symbolgen/internal/gen"
	"symbolgen/internal/symbol"
)

// Swift renders the full generated source file: the enum declaration
// followed by the per-epoch raw value tables.
func Swift(res *gen.Result, enumName string) []byte {
	var b bytes.Buffer

	b.WriteString("// Generated by symbolgen from the snapshot manifests. Do not edit.\n\n")
	b.WriteString("import Foundation\n\n")
	b.WriteString("/// Platform symbol identifiers.\n")
	b.WriteString("///\n")
	b.WriteString("/// Each case is annotated with the epoch it was introduced at. Renamed\n")
	b.WriteString("/// symbols keep their old spelling as a deprecated case pointing at the\n")
	b.WriteString("/// live one.\n")
	fmt.Fprintf(&b, "public enum %s: String, CaseIterable {\n", enumName)

	for i, c := range res.Cases {
		if i > 0 {
			b.WriteString("\n")
		}
		writeCase(&b, c)
	}

	b.WriteString("}\n")
	writeRawValueTables(&b, res, enumName)
	return b.Bytes()
}

// writeCase renders one case with its doc comment and availability
// attributes.
func writeCase(b *bytes.Buffer, c symbol.EnumCase) {
	if c.Preview != "" {
		fmt.Fprintf(b, "\t/// %s\n", c.Preview)
	}
	if c.Restriction != "" {
		fmt.Fprintf(b, "\t/// %s\n", c.Restriction)
	}
	if line := localizationLine(c.Localizations); line != "" {
		fmt.Fprintf(b, "\t/// %s\n", line)
	}

	if c.Deprecation == nil {
		fmt.Fprintf(b, "\t@available(iOS %s, macOS %s, tvOS %s, watchOS %s, *)\n",
			c.IntroducedAt.IOS, c.IntroducedAt.MacOS, c.IntroducedAt.TvOS, c.IntroducedAt.WatchOS)
	} else {
		renamed := SwiftIdentifier(c.Deprecation.RenamedTo)
		fmt.Fprintf(b, "\t@available(iOS, introduced: %s, deprecated: %s, renamed: %q)\n",
			c.IntroducedAt.IOS, c.Deprecation.At.IOS, renamed)
		fmt.Fprintf(b, "\t@available(macOS, introduced: %s, deprecated: %s, renamed: %q)\n",
			c.IntroducedAt.MacOS, c.Deprecation.At.MacOS, renamed)
		fmt.Fprintf(b, "\t@available(tvOS, introduced: %s, deprecated: %s, renamed: %q)\n",
			c.IntroducedAt.TvOS, c.Deprecation.At.TvOS, renamed)
		fmt.Fprintf(b, "\t@available(watchOS, introduced: %s, deprecated: %s, renamed: %q)\n",
			c.IntroducedAt.WatchOS, c.Deprecation.At.WatchOS, renamed)
	}

	fmt.Fprintf(b, "\tcase %s = %q\n", SwiftIdentifier(c.CaseID), c.CaseID)
}

// localizationLine summarizes a case's localized variants, each with the
// earliest epoch it appeared at, sorted by variant id.
func localizationLine(locs map[symbol.Availability]map[string]bool) string {
	earliest := make(map[string]symbol.Availability)
	for avail, set := range locs {
		for id := range set {
			first, ok := earliest[id]
			if !ok || avail.Before(first) {
				earliest[id] = avail
			}
		}
	}
	if len(earliest) == 0 {
		return ""
	}

	ids := make([]string, 0, len(earliest))
	for id := range earliest {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s (iOS %s)", id, earliest[id].IOS)
	}
	return "Localized variants: " + strings.Join(parts, ", ") + "."
}

// writeRawValueTables renders one static table per epoch, newest first.
func writeRawValueTables(b *bytes.Buffer, res *gen.Result, enumName string) {
	byEpoch := make(map[symbol.Availability][]symbol.RawValueRow, len(res.Availabilities))
	for _, row := range res.Rows {
		byEpoch[row.Availability] = append(byEpoch[row.Availability], row)
	}

	b.WriteString("\n/// Raw symbol names valid per deployment epoch. Looking up a case in an\n")
	b.WriteString("/// epoch's table yields the name string that references the underlying\n")
	b.WriteString("/// symbol at that epoch.\n")
	fmt.Fprintf(b, "public extension %s {\n", enumName)

	for i := len(res.Availabilities) - 1; i >= 0; i-- {
		avail := res.Availabilities[i]
		if i < len(res.Availabilities)-1 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "\t/// %s\n", avail)
		fmt.Fprintf(b, "\tstatic let rawValues_%s: [%s: String] = [\n", versionIdentifier(avail.IOS), enumName)
		for _, row := range byEpoch[avail] {
			fmt.Fprintf(b, "\t\t.%s: %q,\n", SwiftIdentifier(row.CaseID), row.Name)
		}
		b.WriteString("\t]\n")
	}

	b.WriteString("}\n")
}

// versionIdentifier makes a version string usable inside an identifier:
// "10.15" becomes "10_15".
func versionIdentifier(version string) string {
	return strings.ReplaceAll(version, ".", "_")
}
