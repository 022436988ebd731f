package twmerge

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
)

// GroupProvider defines where the group table of a Merger comes from.
type GroupProvider interface {
	// GetGroups returns the ordered group table and the variant prefixes to recognize.
	GetGroups() (groups []Group, variants []string, err error)
}

// DefaultGroupProvider provides the built-in table and DefaultVariants.
type DefaultGroupProvider struct{}

// GetGroups returns a copy of the built-in table.
func (DefaultGroupProvider) GetGroups() ([]Group, []string, error) {
	return DefaultGroups(), DefaultVariants, nil
}

// ConfigGroupProvider provides the built-in table extended by a Config.
type ConfigGroupProvider struct {
	config *Config
}

// NewConfigGroupProvider creates a provider applying config on top of the built-in table.
func NewConfigGroupProvider(config *Config) *ConfigGroupProvider {
	return &ConfigGroupProvider{config: config}
}

// GetGroups applies the config groups and appends the config variants.
func (p *ConfigGroupProvider) GetGroups() ([]Group, []string, error) {
	groups, variants, _ := DefaultGroupProvider{}.GetGroups()
	if p.config == nil {
		return groups, variants, nil
	}
	groups, err := p.config.Apply(groups)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply group config: %w", err)
	}
	if len(p.config.Variants) > 0 {
		variants = append(append([]string{}, variants...), p.config.Variants...)
	}
	gologger.Verbose().Msgf("Group config applied: %d groups, %d variants", len(groups), len(variants))
	return groups, variants, nil
}
