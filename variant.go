package twmerge

import "strings"

// VariantSeparator separates a variant prefix from the utility it qualifies.
const VariantSeparator = ":"

// DefaultVariants are the responsive and state prefixes a token may carry.
// A prefix does not change the group of a token: `sm:p-4`, `hover:p-4` and
// `p-4` all classify as `p`.
var DefaultVariants = []string{
	"sm", "md", "lg", "xl", "2xl",
	"hover", "focus", "active", "disabled", "dark",
}

// variantSet holds the prefixes recognized by one classifier.
type variantSet map[string]struct{}

func newVariantSet(variants ...string) variantSet {
	set := make(variantSet, len(variants))
	for _, v := range variants {
		if v = strings.TrimSuffix(strings.TrimSpace(v), VariantSeparator); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// split separates an optional leading variant from the base utility.
// Only a known variant is split off, so colons inside arbitrary values such
// as `bg-[url(https://x)]` are left untouched.
func (s variantSet) split(token string) (variant, base string) {
	prefix, rest, found := strings.Cut(token, VariantSeparator)
	if !found {
		return "", token
	}
	if _, ok := s[prefix]; !ok {
		return "", token
	}
	return prefix, rest
}

func (s variantSet) list() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
