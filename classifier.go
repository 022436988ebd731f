package twmerge

import (
	"slices"

	"github.com/armon/go-radix"
)

// CustomPrefix prefixes the synthetic group of a token no recognizer accepts.
// The group is `custom:<token>`, unique per distinct token.
const CustomPrefix = "custom:"

// Classification describes how a token was classified.
type Classification struct {
	Token   string // token as supplied
	Variant string // variant prefix without separator, empty if none
	Base    string // token without its variant prefix
	Group   string // group identifier, CustomPrefix+Token when Custom
	Custom  bool   // true if no recognizer accepted the token
}

// Classifier maps tokens to groups using an ordered group table.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	groups   []Group
	variants variantSet
	// index maps recognizer leads to the table positions of their groups
	index *radix.Tree
}

// NewClassifier returns a classifier over groups, scanned in the given order.
// When no variants are given DefaultVariants are used.
func NewClassifier(groups []Group, variants ...string) *Classifier {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	c := &Classifier{
		groups:   groups,
		variants: newVariantSet(variants...),
		index:    radix.New(),
	}
	for i, g := range groups {
		for _, r := range g.Recognizers {
			for _, lead := range r.Leads() {
				c.addLead(lead, i)
			}
		}
	}
	return c
}

func (c *Classifier) addLead(lead string, position int) {
	var positions []int
	if v, ok := c.index.Get(lead); ok {
		positions = v.([]int)
	}
	if slices.Contains(positions, position) {
		return
	}
	c.index.Insert(lead, append(positions, position))
}

// candidates returns, in table order, every group owning a lead that prefixes base.
// Groups without such a lead cannot accept base, so checking only the
// candidates gives the same first match as scanning the whole table.
func (c *Classifier) candidates(base string) []int {
	var positions []int
	c.index.WalkPath(base, func(_ string, v interface{}) bool {
		positions = append(positions, v.([]int)...)
		return false
	})
	slices.Sort(positions)
	return slices.Compact(positions)
}

// Classify returns the group identifier of token. It never fails: a token
// matching no group gets the synthetic identifier CustomPrefix+token.
func (c *Classifier) Classify(token string) string {
	return c.Lookup(token).Group
}

// Lookup classifies token and reports the details of the decision.
func (c *Classifier) Lookup(token string) Classification {
	variant, base := c.variants.split(token)
	res := Classification{Token: token, Variant: variant, Base: base}
	for _, i := range c.candidates(base) {
		g := c.groups[i]
		if variant != "" && g.NoVariants {
			continue
		}
		if g.Match(base) {
			res.Group = g.ID
			return res
		}
	}
	res.Group = CustomPrefix + token
	res.Custom = true
	return res
}

// Groups returns the group identifiers in table order.
func (c *Classifier) Groups() []string {
	ids := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		ids = append(ids, g.ID)
	}
	return ids
}

// Variants returns the recognized variant prefixes, sorted.
func (c *Classifier) Variants() []string {
	v := c.variants.list()
	slices.Sort(v)
	return v
}
