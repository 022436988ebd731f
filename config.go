package twmerge

import (
	"fmt"
	"os"
	"slices"

	"github.com/agnivade/levenshtein"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoGroupID  = errkit.New("group config without id")
	ErrEmptyGroup = errkit.New("group config without keywords, prefixes or patterns")
)

// Config extends the built-in table with project specific utilities.
type Config struct {
	// Variants are extra variant prefixes, added to DefaultVariants
	Variants []string `yaml:"variants,omitempty"`
	// Groups are applied in order on top of the built-in table
	Groups []GroupConfig `yaml:"groups"`
}

// GroupConfig describes one group of a Config.
//
// If ID names an existing group the recognizers are added to it. Otherwise
// a new group is inserted right after After, right before Before, or at the
// end of the table.
type GroupConfig struct {
	ID     string `yaml:"id"`
	After  string `yaml:"after,omitempty"`
	Before string `yaml:"before,omitempty"`
	// Keywords are utilities accepted as is, ex: text-shadow
	Keywords []string `yaml:"keywords,omitempty"`
	// Prefixes accept any non-empty value after them, ex: text-shadow-
	Prefixes []string `yaml:"prefixes,omitempty"`
	// Patterns are regular expressions matched against the whole utility
	Patterns []string `yaml:"patterns,omitempty"`
	// Variants when false rejects tokens carrying a variant prefix (default true)
	Variants *bool `yaml:"variants,omitempty"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse group config %v: %w", filePath, err)
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file showing every group config option
func GenerateSample(filePath string) error {
	strict := false
	cfg := Config{
		Variants: []string{"group-hover", "print"},
		Groups: []GroupConfig{
			{
				ID:       "textShadow",
				After:    "shadow",
				Keywords: []string{"text-shadow", "text-shadow-none"},
				Patterns: []string{`text-shadow-(sm|md|lg|\[.+\])`},
			},
			{
				ID:       "textColor",
				Patterns: []string{`text-brand(-(light|dark))?`},
			},
			{
				ID:       "container",
				Before:   "display",
				Keywords: []string{"container"},
				Variants: &strict,
			},
		},
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Group compiles the config into a Group.
func (g GroupConfig) Group() (Group, error) {
	if g.ID == "" {
		return Group{}, ErrNoGroupID
	}
	if len(g.Keywords)+len(g.Prefixes)+len(g.Patterns) == 0 {
		return Group{}, fmt.Errorf("%v: %w", g.ID, ErrEmptyGroup)
	}
	out := Group{ID: g.ID, NoVariants: g.Variants != nil && !*g.Variants}
	if keywords := purgeDuplicates(g.ID, "keywords", g.Keywords); len(keywords) > 0 {
		out.Recognizers = append(out.Recognizers, Keywords(keywords...))
	}
	for _, prefix := range purgeDuplicates(g.ID, "prefixes", g.Prefixes) {
		out.Recognizers = append(out.Recognizers, Prefixed(prefix, Any))
	}
	for _, expr := range purgeDuplicates(g.ID, "patterns", g.Patterns) {
		r, err := Pattern(expr)
		if err != nil {
			return Group{}, fmt.Errorf("%v: %w", g.ID, err)
		}
		out.Recognizers = append(out.Recognizers, r)
	}
	return out, nil
}

func purgeDuplicates(id, field string, values []string) []string {
	dedupe := sliceutil.Dedupe(values)
	if len(values) != len(dedupe) {
		gologger.Warning().Msgf("%v duplicate %v found in group %v. purging them..", len(values)-len(dedupe), field, id)
	}
	return dedupe
}

// Apply returns groups with every group of the config applied in order.
// The input slice is not modified.
func (c *Config) Apply(groups []Group) ([]Group, error) {
	out := make([]Group, len(groups))
	copy(out, groups)
	for _, gc := range c.Groups {
		g, err := gc.Group()
		if err != nil {
			return nil, err
		}
		if out, err = placeGroup(out, g, gc.After, gc.Before); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// placeGroup extends the group sharing g.ID or inserts g as a new group.
func placeGroup(groups []Group, g Group, after, before string) ([]Group, error) {
	if after != "" && before != "" {
		return nil, fmt.Errorf("group %v: after and before are mutually exclusive", g.ID)
	}
	if i := indexOfGroup(groups, g.ID); i >= 0 {
		if after != "" || before != "" {
			return nil, fmt.Errorf("group %v already exists and cannot be moved", g.ID)
		}
		existing := groups[i]
		existing.Recognizers = append(append([]Recognizer{}, existing.Recognizers...), g.Recognizers...)
		existing.NoVariants = existing.NoVariants || g.NoVariants
		groups[i] = existing
		gologger.Verbose().Msgf("extended group %v with %d recognizers", g.ID, len(g.Recognizers))
		return groups, nil
	}
	at := len(groups)
	switch {
	case after != "":
		i := indexOfGroup(groups, after)
		if i < 0 {
			return nil, unknownGroupError(groups, g.ID, after)
		}
		at = i + 1
	case before != "":
		i := indexOfGroup(groups, before)
		if i < 0 {
			return nil, unknownGroupError(groups, g.ID, before)
		}
		at = i
	}
	gologger.Verbose().Msgf("added group %v at position %d", g.ID, at)
	return slices.Insert(groups, at, g), nil
}

func indexOfGroup(groups []Group, id string) int {
	for i, g := range groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// maxSuggestDistance bounds the edit distance of a "did you mean" suggestion
const maxSuggestDistance = 3

func unknownGroupError(groups []Group, id, anchor string) error {
	if s := closestGroup(groups, anchor); s != "" {
		return fmt.Errorf("group %v references unknown group %q, did you mean %q?", id, anchor, s)
	}
	return fmt.Errorf("group %v references unknown group %q", id, anchor)
}

// closestGroup returns the id closest to name, or "" if nothing is close enough.
func closestGroup(groups []Group, name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, g := range groups {
		if d := levenshtein.ComputeDistance(name, g.ID); d < bestDist {
			best, bestDist = g.ID, d
		}
	}
	return best
}
