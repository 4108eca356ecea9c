package gen

import "symbolgen/internal/symbol"

// Epochs shared across the package tests.
var (
	e13 = symbol.Availability{IOS: "13.0", MacOS: "10.15", TvOS: "13.0", WatchOS: "6.0"}
	e14 = symbol.Availability{IOS: "14.0", MacOS: "11.0", TvOS: "14.0", WatchOS: "7.0"}
	e15 = symbol.Availability{IOS: "15.0", MacOS: "12.0", TvOS: "15.0", WatchOS: "8.0"}
)

// staticResolver resolves via a fixed map; unknown names pass through.
type staticResolver map[string]string

func (r staticResolver) Resolve(name string) string {
	if to, ok := r[name]; ok {
		return to
	}
	return name
}
