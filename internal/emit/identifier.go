package emit

import (
	"strings"
	"unicode"
)

// swiftKeywords are reserved words that need backtick escaping when used as
// a case identifier.
var swiftKeywords = map[string]bool{
	"as": true, "break": true, "case": true, "catch": true, "class": true,
	"continue": true, "default": true, "defer": true, "deinit": true,
	"do": true, "else": true, "enum": true, "extension": true, "false": true,
	"for": true, "func": true, "guard": true, "if": true, "import": true,
	"in": true, "init": true, "is": true, "let": true, "nil": true,
	"private": true, "protocol": true, "public": true, "repeat": true,
	"return": true, "self": true, "static": true, "struct": true,
	"super": true, "switch": true, "throw": true, "throws": true,
	"true": true, "try": true, "var": true, "where": true, "while": true,
}

// SwiftIdentifier converts a dotted symbol name into a Swift case
// identifier: "square.and.arrow.up" becomes "squareAndArrowUp". Names that
// would start with a digit are prefixed with an underscore; reserved words
// are backtick-escaped.
func SwiftIdentifier(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == '-'
	})
	var b strings.Builder
	for i, seg := range segments {
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(capitalize(seg))
	}
	id := b.String()
	if id == "" {
		return "_"
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	if swiftKeywords[id] {
		id = "`" + id + "`"
	}
	return id
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
