package twmerge

import "strings"

// Value reports whether the value part of a utility (everything after the
// recognizer lead) has an accepted shape.
type Value func(value string) bool

// reservedColorNames are utility words that look like `name-shade` but
// belong to other groups (bg-opacity-50, ring-offset-2, border-spacing-2).
var reservedColorNames = map[string]struct{}{
	"opacity": {},
	"offset":  {},
	"spacing": {},
}

// arbitraryColorPrefixes mark an arbitrary value as a color rather than a length.
// A custom property such as [var(--brand)] counts as a color.
var arbitraryColorPrefixes = []string{
	"#", "rgb", "hsl", "hwb", "lab(", "lch(", "oklab(", "oklch(", "color:", "color(", "var(",
}

// arbitraryLengthPrefixes mark an arbitrary value as a length.
var arbitraryLengthPrefixes = []string{
	"length:", "calc(", "min(", "max(", "clamp(",
}

var (
	// Number accepts unsigned integers and decimals: 4, 0.5, 2.5
	Number Value = isNumber
	// SignedNumber accepts Number with an optional leading minus: -4
	SignedNumber Value = func(v string) bool {
		return isNumber(strings.TrimPrefix(v, "-"))
	}
	// Px accepts the literal keyword `px`
	Px = OneOf("px")
	// Auto accepts the literal keyword `auto`
	Auto = OneOf("auto")
	// Fraction accepts ratios such as 1/2 or 11/12
	Fraction Value = isFraction
	// Arbitrary accepts a non-empty bracket-delimited payload: [12px], [#fff], [calc(100%-1rem)]
	Arbitrary Value = isArbitrary
	// ArbitraryLength accepts arbitrary values whose payload reads as a length
	ArbitraryLength Value = func(v string) bool {
		if !isArbitrary(v) {
			return false
		}
		return looksLikeLength(v[1 : len(v)-1])
	}
	// ArbitraryColor accepts arbitrary values whose payload reads as a color
	ArbitraryColor Value = func(v string) bool {
		if !isArbitrary(v) {
			return false
		}
		return hasAnyPrefix(v[1:len(v)-1], arbitraryColorPrefixes)
	}
	// ArbitraryNumber accepts arbitrary values with a purely numeric payload: [550]
	ArbitraryNumber Value = func(v string) bool {
		return isArbitrary(v) && isDigits(v[1:len(v)-1])
	}
	// Color accepts palette colors (red-500, brand-50/75), color keywords and arbitrary colors
	Color Value = isColor
	// Word accepts a lowercase hyphenated word: pointer, not-allowed, zoom-in
	Word Value = isWord
	// Any accepts every non-empty value
	Any Value = func(v string) bool { return v != "" }
)

// OneOf accepts exactly the given keywords.
func OneOf(words ...string) Value {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

// AnyOf accepts a value when at least one of values does.
func AnyOf(values ...Value) Value {
	return func(v string) bool {
		for _, value := range values {
			if value(v) {
				return true
			}
		}
		return false
	}
}

// Except accepts what value accepts unless excluded accepts it too.
func Except(value, excluded Value) Value {
	return func(v string) bool {
		return value(v) && !excluded(v)
	}
}

// TShirt accepts the size scale xs..Nxl used by text, radius, shadow and max-width utilities.
var TShirt Value = func(v string) bool {
	switch v {
	case "xs", "sm", "md", "base", "lg", "xl":
		return true
	}
	n, ok := strings.CutSuffix(v, "xl")
	return ok && isDigits(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	whole, frac, found := strings.Cut(s, ".")
	if !isDigits(whole) {
		return false
	}
	return !found || isDigits(frac)
}

func isFraction(s string) bool {
	num, den, found := strings.Cut(s, "/")
	return found && isDigits(num) && isDigits(den)
}

func isArbitrary(s string) bool {
	return len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func looksLikeLength(payload string) bool {
	if payload == "" {
		return false
	}
	if c := payload[0]; (c >= '0' && c <= '9') || c == '.' {
		return true
	}
	if len(payload) > 1 && payload[0] == '-' && payload[1] >= '0' && payload[1] <= '9' {
		return true
	}
	return hasAnyPrefix(payload, arbitraryLengthPrefixes)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isWord(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && c != '-' {
			return false
		}
	}
	return true
}

// isColor accepts `black`, `white`, `transparent`, `current`, `inherit`,
// `name-shade` with an optional `/opacity` modifier, and arbitrary colors.
func isColor(s string) bool {
	if isArbitrary(s) {
		return hasAnyPrefix(s[1:len(s)-1], arbitraryColorPrefixes)
	}
	color, alpha, hasAlpha := strings.Cut(s, "/")
	if hasAlpha && !(isDigits(alpha) && len(alpha) <= 3) && !isArbitrary(alpha) {
		return false
	}
	switch color {
	case "black", "white", "transparent", "current", "inherit":
		return true
	}
	name, shade, found := strings.Cut(color, "-")
	if !found || name == "" || len(shade) > 4 || !isDigits(shade) {
		return false
	}
	if _, reserved := reservedColorNames[name]; reserved {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 'a' || name[i] > 'z' {
			return false
		}
	}
	return true
}
