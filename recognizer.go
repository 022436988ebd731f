package twmerge

import (
	"fmt"
	"regexp"
	"strings"
)

// Recognizer is a predicate over a base utility, that is a token with its
// variant prefix already removed.
//
// Every base a recognizer accepts starts with one of its leads. The
// classifier relies on this to index candidate groups by prefix.
type Recognizer struct {
	leads []string
	match func(base string) bool
	// source is a human readable form used in listings
	source string
}

// Match reports whether base belongs to the recognizer.
func (r Recognizer) Match(base string) bool {
	return r.match(base)
}

// Leads returns the literal prefixes of every base the recognizer accepts.
func (r Recognizer) Leads() []string {
	return r.leads
}

// String returns a short description of the recognizer.
func (r Recognizer) String() string {
	return r.source
}

// Keywords accepts exactly the given utilities.
func Keywords(words ...string) Recognizer {
	set := OneOf(words...)
	return Recognizer{
		leads:  words,
		match:  set,
		source: strings.Join(words, "|"),
	}
}

// Prefixed accepts `lead + value` for every value accepted by v.
func Prefixed(lead string, v Value) Recognizer {
	return Recognizer{
		leads: []string{lead},
		match: func(base string) bool {
			rest, ok := strings.CutPrefix(base, lead)
			return ok && v(rest)
		},
		source: lead + "*",
	}
}

// negatableKeywords are the keywords that keep their meaning with a minus
// sign: -m-px, -translate-x-full.
var negatableKeywords = OneOf("px", "full")

// Signed is Prefixed for utilities that take negative values. Besides the
// values accepted by v it accepts the two negative spellings `-lead4` and
// `lead-4`. A negative value is any value of v except keywords such as auto
// or first, unless listed in negatableKeywords.
func Signed(lead string, v Value) Recognizer {
	negLead := "-" + lead
	negative := Except(v, Except(Word, negatableKeywords))
	return Recognizer{
		leads: []string{lead, negLead},
		match: func(base string) bool {
			if rest, ok := strings.CutPrefix(base, negLead); ok {
				return negative(rest)
			}
			rest, ok := strings.CutPrefix(base, lead)
			return ok && (v(rest) || SignedNumber(rest))
		},
		source: "-?" + lead + "*",
	}
}

// Pattern accepts bases fully matched by the regular expression expr.
// Go regular expressions run in linear time, so user supplied patterns
// cannot backtrack catastrophically.
func Pattern(expr string) (Recognizer, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return Recognizer{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return Recognizer{
		// patterns are candidates for every base
		leads:  []string{""},
		match:  re.MatchString,
		source: expr,
	}, nil
}

// Group is a semantic styling category. Tokens of the same group are
// mutually exclusive when merged; the last one wins.
type Group struct {
	// ID identifies the group, for example `textColor` or `pl`
	ID string
	// Recognizers are alternatives, a token belongs to the group if any matches
	Recognizers []Recognizer
	// NoVariants rejects tokens carrying a variant prefix such as `hover:`
	NoVariants bool
}

// Match reports whether base is accepted by any of the group recognizers.
func (g Group) Match(base string) bool {
	for _, r := range g.Recognizers {
		if r.Match(base) {
			return true
		}
	}
	return false
}

func group(id string, recognizers ...Recognizer) Group {
	return Group{ID: id, Recognizers: recognizers}
}
