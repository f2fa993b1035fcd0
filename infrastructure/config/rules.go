package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"novena-backend/domain/matching"
)

// RulesOverlay is the optional YAML overlay letting operators extend the
// compiled-in matching tables without a redeploy. Overlay groups are appended
// after the built-in table so built-in tie-break order is preserved.
type RulesOverlay struct {
	Groups  []RuleGroup       `yaml:"groups"`
	Reasons map[string]string `yaml:"reasons"`
}

// RuleGroup mirrors matching.PatronSaintGroup in YAML form.
type RuleGroup struct {
	Keywords       []string `yaml:"keywords"`
	PatronSaint    string   `yaml:"patronSaint"`
	Reason         string   `yaml:"reason"`
	PreferredSlugs []string `yaml:"preferredSlugs"`
}

// LoadRules reads and validates a rules overlay file.
func LoadRules(path string) (*RulesOverlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var overlay RulesOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if err := overlay.Validate(); err != nil {
		return nil, err
	}

	return &overlay, nil
}

// Validate checks that every overlay group is usable by the keyword matcher.
func (o *RulesOverlay) Validate() error {
	for i, g := range o.Groups {
		if len(g.Keywords) == 0 {
			return fmt.Errorf("rules group %d has no keywords", i)
		}
		if g.PatronSaint == "" {
			return fmt.Errorf("rules group %d has no patron saint", i)
		}
	}
	return nil
}

// PatronSaintGroups converts the overlay groups to the domain table form.
func (o *RulesOverlay) PatronSaintGroups() []matching.PatronSaintGroup {
	groups := make([]matching.PatronSaintGroup, 0, len(o.Groups))
	for _, g := range o.Groups {
		groups = append(groups, matching.PatronSaintGroup{
			Keywords:       g.Keywords,
			PatronSaint:    g.PatronSaint,
			Reason:         g.Reason,
			PreferredSlugs: g.PreferredSlugs,
		})
	}
	return groups
}
