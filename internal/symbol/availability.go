package symbol

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Availability identifies a platform release epoch as the tuple of the four
// platform versions shipped together at that epoch.
//
// All four versions move in lockstep across epochs, so the total order is
// defined by the iOS version alone. Availability is a comparable struct and
// is used directly as a map key; two availabilities that compare equal are
// the same epoch.
type Availability struct {
	IOS     string `json:"ios" yaml:"iOS"`
	MacOS   string `json:"macos" yaml:"macOS"`
	TvOS    string `json:"tvos" yaml:"tvOS"`
	WatchOS string `json:"watchos" yaml:"watchOS"`
}

// Compare returns -1, 0, or 1 as a is ordered before, equal to, or after b.
// Ordering is by the iOS version, compared numerically component-wise.
func (a Availability) Compare(b Availability) int {
	return CompareVersions(a.IOS, b.IOS)
}

// Before reports whether a is strictly ordered before b.
func (a Availability) Before(b Availability) bool {
	return a.Compare(b) < 0
}

// String renders the epoch for diagnostics, e.g.
// "iOS 13.0 / macOS 10.15 / tvOS 13.0 / watchOS 6.0".
func (a Availability) String() string {
	return fmt.Sprintf("iOS %s / macOS %s / tvOS %s / watchOS %s", a.IOS, a.MacOS, a.TvOS, a.WatchOS)
}

// CompareVersions compares two dotted version strings numerically,
// component by component. Missing components compare as zero, so
// "13" == "13.0". Non-numeric components fall back to lexical comparison.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := "0", "0"
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		ai, aerr := strconv.Atoi(av)
		bi, berr := strconv.Atoi(bv)
		if aerr != nil || berr != nil {
			if c := strings.Compare(av, bv); c != 0 {
				return c
			}
			continue
		}
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SortAvailabilities sorts epochs in place, ascending (oldest first).
func SortAvailabilities(avails []Availability) {
	sort.Slice(avails, func(i, j int) bool {
		return avails[i].Before(avails[j])
	})
}
